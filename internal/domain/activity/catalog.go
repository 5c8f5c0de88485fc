package activity

import "github.com/google/uuid"

// DefaultCatalog is the studio's launch catalog. The startup seeder upserts
// it by name into whichever store is configured.
func DefaultCatalog() []*Activity {
	seed := []Params{
		{Name: PotteryMaking, Icon: "🏺", Color: "from-pink-500 to-rose-500", Description: "Shape clay into beautiful pottery"},
		{Name: CeramicCrafting, Icon: "🎨", Color: "from-purple-500 to-pink-500", Description: "Create stunning ceramic pieces"},
		{Name: ArtAndPainting, Icon: "🖌️", Color: "from-orange-500 to-yellow-500", Description: "Express yourself through colors"},
		{Name: CreativeFoodCenter, Icon: "👨‍🍳", Color: "from-green-500 to-teal-500", Description: "Cook while you create"},
		{Name: MixedActivities, Icon: "✨", Color: "from-indigo-500 to-purple-500", Description: "Try multiple creative activities"},
		{Name: Bharatanatyam, Icon: "💃", Color: "from-red-500 to-orange-500", Description: "Classical Indian dance and storytelling"},
		{Name: ActingStudio, Icon: "🎭", Color: "from-blue-500 to-cyan-500", Description: "Explore drama and performance arts"},
	}

	out := make([]*Activity, 0, len(seed))
	for _, p := range seed {
		p.ID = uuid.New()
		p.IsActive = true
		p.DurationMinutes = DefaultDurationMinutes
		p.MaxCapacity = DefaultMaxCapacity
		out = append(out, Reconstruct(p))
	}
	return out
}
