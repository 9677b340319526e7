package navbar

// ActionKind distinguishes clipboard actions from link actions.
type ActionKind int

const (
	ActionCopy ActionKind = iota
	ActionOpen
)

// Action is one entry of the brand context menu.
type Action struct {
	Kind  ActionKind
	Label string
	Icon  string
	Value string // text to copy or URL to open
}

// Actions returns the context menu entries in display order.
func (c Config) Actions() []Action {
	return []Action{
		{Kind: ActionCopy, Label: "Salin nama brand", Icon: "copy", Value: c.Brand},
		{Kind: ActionCopy, Label: "Salin tagline", Icon: "description", Value: c.Tagline},
		{Kind: ActionOpen, Label: "Buka situs utama", Icon: "external-link", Value: c.SiteURL},
	}
}
