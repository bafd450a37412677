package generator

// ideaTemplate is a curated concept seed. The generator overlays the caller's
// parameters on top of one of these. Stands in for a generative model call.
type ideaTemplate struct {
	Title          string
	Genre          string
	Description    string
	CoreGameplay   string
	UniqueFeatures []string
}

var ideaTemplates = []ideaTemplate{
	{
		Title:        "Quantum Gardener",
		Genre:        "Puzzle",
		Description:  "A mind-bending puzzle game where players manipulate quantum states of plants to solve environmental challenges.",
		CoreGameplay: "Use quantum mechanics principles to grow and modify plants across multiple dimensional states.",
		UniqueFeatures: []string{
			"Quantum superposition mechanics",
			"Reality-shifting puzzles",
			"Procedurally generated ecosystems",
			"Educational quantum physics integration",
		},
	},
	{
		Title:        "Neon Courier",
		Genre:        "Action",
		Description:  "Fast-paced cyberpunk delivery game where players navigate a vertical city using parkour and hoverboards.",
		CoreGameplay: "Time-based delivery missions with dynamic obstacle courses and rival couriers.",
		UniqueFeatures: []string{
			"Vertical city exploration",
			"Dynamic weather affecting routes",
			"Customizable delivery vehicles",
			"Reputation system affecting available jobs",
		},
	},
	{
		Title:        "Stellar Archaeologist",
		Genre:        "Adventure",
		Description:  "Explore ancient alien ruins across the galaxy, solving puzzles and uncovering cosmic mysteries.",
		CoreGameplay: "Archaeological excavation mechanics combined with space exploration and alien language decoding.",
		UniqueFeatures: []string{
			"Procedural alien language generation",
			"Archaeological tool simulation",
			"Dynamic story based on discoveries",
			"Collaborative research with other players",
		},
	},
}

var defaultTechnicalRequirements = []string{
	"Cross-platform game engine (Unity/Godot)",
	"Cloud save synchronization",
	"Analytics integration",
	"Platform-specific optimizations",
}

var defaultMarketingHooks = []string{
	"Unique core mechanic never seen before",
	"Beautiful, Instagram-worthy visuals",
	"Perfect for streaming and social media",
	"Appeals to both casual and hardcore audiences",
}

var defaultRiskFactors = []string{
	"Market saturation in genre - mitigate with strong unique features",
	"Technical complexity - start with simplified MVP",
	"Marketing reach - focus on influencer partnerships",
}

var defaultMVPFeatures = []string{
	"Core gameplay loop (10-15 levels)",
	"Basic progression system",
	"Essential UI/UX",
	"Save/load functionality",
	"Tutorial system",
}
