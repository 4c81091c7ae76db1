package debug

// Coords is the top-left camera position readout. Text is drawn only while shown.
type Coords struct {
	owner   *Debug
	visible bool
	text    string
}

func (c *Coords) Show()            { c.visible = true }
func (c *Coords) Hide()            { c.visible = false }
func (c *Coords) SetText(t string) { c.text = t }
func (c *Coords) Visible() bool    { return c.visible }
func (c *Coords) Text() string     { return c.text }

// Remove detaches the readout from its Debug. Safe to call twice.
func (c *Coords) Remove() {
	c.visible = false
	if c.owner != nil && c.owner.coords == c {
		c.owner.coords = nil
	}
	c.owner = nil
}
