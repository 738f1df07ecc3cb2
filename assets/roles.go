package assets

// Role emoji used by the roster status line.
const (
	GlyphFighter = "🗡️"
	GlyphHealer  = "🌿"
	GlyphWizard  = "🧙"
	GlyphUnknown = "❔"
)

// RoleDef defines an adventurer role and the specialty its specialists carry.
type RoleDef struct {
	Name       string // exact role label, e.g. "Fighter"
	Emoji      string
	Attribute  string // specialty attribute name ("strength", "healing power", "mana")
	StartValue int    // starting value of the specialty attribute
	// ActionFormat takes the adventurer name and the attribute value.
	ActionFormat string
}

// Roles is the fixed, ordered list of valid adventurer roles.
var Roles = []RoleDef{
	{
		Name:         "Fighter",
		Emoji:        GlyphFighter,
		Attribute:    "strength",
		StartValue:   10,
		ActionFormat: "%s attacks with strength %d!",
	},
	{
		Name:         "Healer",
		Emoji:        GlyphHealer,
		Attribute:    "healing power",
		StartValue:   10,
		ActionFormat: "%s heals with power %d!",
	},
	{
		Name:         "Wizard",
		Emoji:        GlyphWizard,
		Attribute:    "mana",
		StartValue:   100,
		ActionFormat: "%s casts a spell with %d mana!",
	},
}

// StartingInventory is pushed onto every adventurer's inventory, in order.
var StartingInventory = []string{"bedroll", "50 gold coins"}

// RoleByName returns the role definition with the exact given name.
func RoleByName(name string) (RoleDef, bool) {
	for _, r := range Roles {
		if r.Name == name {
			return r, true
		}
	}
	return RoleDef{}, false
}
