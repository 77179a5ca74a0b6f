package dialogue

// SeedVillageScript defines the default Emberwick village narrative, used
// when no script file is present on disk.
func SeedVillageScript() *Script {
	return &Script{
		Version: 1,
		Triggers: []TriggerDef{
			{
				ID:            "npc.old-mara",
				Name:          "Old Mara",
				X:             14, Y: 9,
				OnInteraction: true,
				Entries: []EntryDef{
					{
						Speaker:  "OLD MARA",
						Text:     "Ah, a new face in Emberwick. Few come this far up the valley since the bridge gave out.",
						Portrait: "mara",
					},
					{
						Speaker:  "OLD MARA",
						Text:     "You'll have questions, I expect. Everyone does.",
						Portrait: "mara",
						Choices: []ChoiceDef{
							{Text: "Ask about the lantern festival", SetFlag: "mara.festival"},
							{Text: "Ask about the broken bridge", SetFlag: "mara.bridge"},
							{Text: "Just nod and move on"},
						},
					},
					{
						Speaker:  "OLD MARA",
						Text:     "Mind the shrine on your way through. The light there does strange things to travellers.",
						Portrait: "mara",
					},
				},
			},
			{
				ID:          "scene.shrine",
				Name:        "Lantern Shrine",
				X:           32, Y: 20,
				OnSpotlight: true,
				Spotlight:   &RegionDef{ID: "spot.shrine", X: 32, Y: 20, Radius: 4},
				Entries: []EntryDef{
					{
						Speaker:   "",
						Text:      "[The shrine lanterns flare as you step into their circle. Your feet feel rooted to the stones.]",
						DurationS: 4,
					},
					{
						Speaker:  "YOU",
						Text:     "...the flames aren't casting any shadows.",
						IsPlayer: true,
					},
				},
			},
			{
				ID:            "prop.notice-board",
				Name:          "Notice Board",
				X:             18, Y: 12,
				OnInteraction: true,
				Entries: []EntryDef{
					{
						Speaker:   "",
						Text:      "LANTERN FESTIVAL POSTPONED UNTIL THE BRIDGE IS REPAIRED.\nSigned, the Warden.",
						DurationS: 6,
					},
				},
			},
		},
		Spotlights: []RegionDef{
			{ID: "spot.market-stage", X: 44, Y: 14, Radius: 3},
		},
	}
}
