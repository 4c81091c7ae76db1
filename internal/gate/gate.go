// Package gate runs the entry flow in front of the walkthrough: a one-time age check
// persisted per user, then a work-in-progress notice shown every session.
package gate

import (
	_ "embed"
	"strings"

	"walkthrough/internal/logger"
	"walkthrough/internal/ui"

	"github.com/quasilyte/gdata"
)

// AppName namespaces the persisted data.
const AppName = "walkthrough"

const (
	ageKey   = "age_verified"
	ageValue = "true"

	// Button ids.
	VerifyAge        = "verify-age"
	AcceptDisclaimer = "accept-disclaimer"
)

//go:embed gate.css
var stylesheet string

// Store is the slice of gdata.Manager the gate needs.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// OpenStore opens the per-user data store for the walkthrough.
func OpenStore() (*gdata.Manager, error) {
	return gdata.Open(gdata.Config{AppName: AppName})
}

// Stage is where the user is in the entry flow.
type Stage int

const (
	StageAge Stage = iota
	StageDisclaimer
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageAge:
		return "age"
	case StageDisclaimer:
		return "disclaimer"
	}
	return "done"
}

var disclaimerText = strings.Join([]string{
	"Please be aware that this website is currently under active development.",
	"You may encounter:",
	"",
	"- Bugs or technical issues",
	"- Incomplete features",
	"- Performance inconsistencies",
	"- Unexpected behavior",
	"",
	`By clicking "I Understand", you acknowledge that you're accessing a work`,
	"in progress and accept that some features may not function as intended.",
}, "\n")

// Gate tracks the entry flow. A nil store works; the age check is then asked every run.
type Gate struct {
	store Store
	log   *logger.Logger
	stage Stage

	age        []*ui.Node
	disclaimer []*ui.Node
}

// New reads the persisted age flag and starts at the first stage still needed.
func New(store Store, log *logger.Logger) *Gate {
	if log == nil {
		log = logger.InMemory()
	}
	g := &Gate{
		store: store,
		log:   log,
		age: []*ui.Node{
			ui.NewNode(ui.TypePanel, "backdrop", "", ""),
			ui.NewNode(ui.TypeLabel, "title", "age-title", "Age Verification Required"),
			ui.NewNode(ui.TypeLabel, "text", "age-text", "You must be 18 or older to enter this website."),
			ui.Button("button", VerifyAge, "I am 18 or older"),
		},
		disclaimer: []*ui.Node{
			ui.NewNode(ui.TypePanel, "backdrop", "", ""),
			ui.NewNode(ui.TypePanel, "card", "", ""),
			ui.NewNode(ui.TypeLabel, "title", "disclaimer-title", "Work in Progress Disclaimer"),
			ui.NewNode(ui.TypeLabel, "text", "disclaimer-text", disclaimerText),
			ui.Button("button", AcceptDisclaimer, "I Understand"),
		},
	}
	if g.verified() {
		g.stage = StageDisclaimer
	}
	log.Info("gate opened", "stage", g.stage.String())
	return g
}

func (g *Gate) verified() bool {
	if g.store == nil {
		return false
	}
	data, err := g.store.LoadItem(ageKey)
	if err != nil {
		g.log.Warn("could not read age flag", "err", err)
		return false
	}
	return string(data) == ageValue
}

// Stage returns the current stage.
func (g *Gate) Stage() Stage {
	return g.stage
}

// Done reports whether the walkthrough may mount.
func (g *Gate) Done() bool {
	return g.stage == StageDone
}

// Verify records the age confirmation and moves on to the disclaimer. A failed save
// is logged; the session continues and the check is asked again next run.
func (g *Gate) Verify() {
	if g.stage != StageAge {
		return
	}
	if g.store != nil {
		if err := g.store.SaveItem(ageKey, []byte(ageValue)); err != nil {
			g.log.Warn("could not save age flag", "err", err)
		}
	}
	g.stage = StageDisclaimer
}

// Accept dismisses the disclaimer.
func (g *Gate) Accept() {
	if g.stage != StageDisclaimer {
		return
	}
	g.stage = StageDone
	g.log.Info("disclaimer accepted")
}

// Forget clears the persisted age flag. The current session is unaffected.
func (g *Gate) Forget() error {
	if g.store == nil {
		return nil
	}
	return g.store.SaveItem(ageKey, nil)
}

// Click handles a button press by id. Returns whether the stage changed.
func (g *Gate) Click(id string) bool {
	before := g.stage
	switch id {
	case VerifyAge:
		g.Verify()
	case AcceptDisclaimer:
		g.Accept()
	}
	return g.stage != before
}

// Nodes returns the UI for the current stage, nil once done.
func (g *Gate) Nodes() []*ui.Node {
	switch g.stage {
	case StageAge:
		return g.age
	case StageDisclaimer:
		return g.disclaimer
	}
	return nil
}

// Stylesheet parses the gate's embedded CSS.
func Stylesheet() (*ui.Stylesheet, error) {
	return ui.ParseCSS(stylesheet)
}
