package blocks

var colors = []string{
	"White", "Orange", "Magenta", "Light Blue", "Yellow", "Lime", "Pink", "Gray",
	"Light Gray", "Cyan", "Purple", "Blue", "Brown", "Green", "Red", "Black",
}

func colored(suffix string) []Variation {
	v := make([]Variation, len(colors))
	for i, c := range colors {
		v[i] = Variation{Metadata: i, DisplayName: c + " " + suffix}
	}
	return v
}

var woods = []Variation{
	{0, "Oak Wood Planks"}, {1, "Spruce Wood Planks"}, {2, "Birch Wood Planks"},
	{3, "Jungle Wood Planks"}, {4, "Acacia Wood Planks"}, {5, "Dark Oak Wood Planks"},
}

// builtin is the 1.8 block set used when no blocks.json is configured.
var builtin = []Block{
	{ID: 0, Name: "air", DisplayName: "Air"},
	{ID: 1, Name: "stone", DisplayName: "Stone", Variations: []Variation{
		{0, "Stone"}, {1, "Granite"}, {2, "Polished Granite"}, {3, "Diorite"},
		{4, "Polished Diorite"}, {5, "Andesite"}, {6, "Polished Andesite"},
	}},
	{ID: 2, Name: "grass", DisplayName: "Grass Block"},
	{ID: 3, Name: "dirt", DisplayName: "Dirt", Variations: []Variation{
		{0, "Dirt"}, {1, "Coarse Dirt"}, {2, "Podzol"},
	}},
	{ID: 4, Name: "cobblestone", DisplayName: "Cobblestone"},
	{ID: 5, Name: "planks", DisplayName: "Wood Planks", Variations: woods},
	{ID: 7, Name: "bedrock", DisplayName: "Bedrock"},
	{ID: 8, Name: "flowing_water", DisplayName: "Water"},
	{ID: 9, Name: "water", DisplayName: "Stationary Water"},
	{ID: 10, Name: "flowing_lava", DisplayName: "Lava"},
	{ID: 11, Name: "lava", DisplayName: "Stationary Lava"},
	{ID: 12, Name: "sand", DisplayName: "Sand", Variations: []Variation{{0, "Sand"}, {1, "Red Sand"}}},
	{ID: 13, Name: "gravel", DisplayName: "Gravel"},
	{ID: 14, Name: "gold_ore", DisplayName: "Gold Ore"},
	{ID: 15, Name: "iron_ore", DisplayName: "Iron Ore"},
	{ID: 16, Name: "coal_ore", DisplayName: "Coal Ore"},
	{ID: 17, Name: "log", DisplayName: "Wood", Variations: []Variation{
		{0, "Oak Wood"}, {1, "Spruce Wood"}, {2, "Birch Wood"}, {3, "Jungle Wood"},
	}},
	{ID: 18, Name: "leaves", DisplayName: "Leaves"},
	{ID: 20, Name: "glass", DisplayName: "Glass"},
	{ID: 22, Name: "lapis_block", DisplayName: "Lapis Lazuli Block"},
	{ID: 24, Name: "sandstone", DisplayName: "Sandstone"},
	{ID: 35, Name: "wool", DisplayName: "Wool", Variations: colored("Wool")},
	{ID: 41, Name: "gold_block", DisplayName: "Block of Gold"},
	{ID: 42, Name: "iron_block", DisplayName: "Block of Iron"},
	{ID: 45, Name: "brick_block", DisplayName: "Bricks"},
	{ID: 46, Name: "tnt", DisplayName: "TNT"},
	{ID: 48, Name: "mossy_cobblestone", DisplayName: "Moss Stone"},
	{ID: 49, Name: "obsidian", DisplayName: "Obsidian"},
	{ID: 57, Name: "diamond_block", DisplayName: "Block of Diamond"},
	{ID: 79, Name: "ice", DisplayName: "Ice"},
	{ID: 80, Name: "snow", DisplayName: "Snow"},
	{ID: 82, Name: "clay", DisplayName: "Clay"},
	{ID: 87, Name: "netherrack", DisplayName: "Netherrack"},
	{ID: 89, Name: "glowstone", DisplayName: "Glowstone"},
	{ID: 95, Name: "stained_glass", DisplayName: "Stained Glass", Variations: colored("Stained Glass")},
	{ID: 98, Name: "stonebrick", DisplayName: "Stone Bricks"},
	{ID: 155, Name: "quartz_block", DisplayName: "Block of Quartz"},
	{ID: 159, Name: "stained_hardened_clay", DisplayName: "Stained Clay", Variations: colored("Stained Clay")},
	{ID: 171, Name: "carpet", DisplayName: "Carpet", Variations: colored("Carpet")},
	{ID: 172, Name: "hardened_clay", DisplayName: "Hardened Clay"},
}

// Builtin returns a registry of the common 1.8 blocks.
func Builtin() *Registry {
	return New(builtin)
}
