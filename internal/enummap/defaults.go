package enummap

// Names of the built-in mappings.
const (
	FactionName   = "faction"
	UnitClassName = "unit_class"
)

var factionEntries = []Entry{
	{Key: `faction = "Independent"`, Value: `faction = 0`},
	{Key: `faction = "OG's"`, Value: `faction = 1`},
	{Key: `faction = "Technicos"`, Value: `faction = 2`},
	{Key: `faction = "Luchadores Unidos"`, Value: `faction = 3`},
	{Key: `faction = "Los Rudos"`, Value: `faction = 4`},
	{Key: `faction = "Rudos"`, Value: `faction = 4`},
	{Key: `faction = "Los Banditos"`, Value: `faction = 5`},
}

var unitClassEntries = []Entry{
	{Key: `unit_class = "Luchador"`, Value: `unit_class = 0`},
	{Key: `unit_class = "Striker"`, Value: `unit_class = 1`},
	{Key: `unit_class = "Technician"`, Value: `unit_class = 2`},
	{Key: `unit_class = "High Flyer"`, Value: `unit_class = 3`},
	{Key: `unit_class = "Power House"`, Value: `unit_class = 4`},
	{Key: `unit_class = "Brawler"`, Value: `unit_class = 5`},
	{Key: `unit_class = "Fan"`, Value: `unit_class = 6`},
}

// Faction returns a copy of the built-in faction table.
func Faction() Mapping {
	return Mapping{Name: FactionName, Entries: factionEntries}.Clone()
}

// UnitClass returns a copy of the built-in unit class table.
func UnitClass() Mapping {
	return Mapping{Name: UnitClassName, Entries: unitClassEntries}.Clone()
}

// Defaults returns the built-in mappings in the order they are applied.
func Defaults() []Mapping {
	return []Mapping{Faction(), UnitClass()}
}
