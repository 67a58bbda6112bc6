package repo

import (
	"dyflissan/internal/domain/player"
	"dyflissan/internal/domain/story"
)

const (
	NodeName          story.NodeID = "name"
	NodeClass         story.NodeID = "class"
	NodeEnter         story.NodeID = "enter"
	NodeDungeon       story.NodeID = "dungeon"
	NodeGreenDoor     story.NodeID = "green_door"
	NodeChest         story.NodeID = "chest"
	NodeOpenChest     story.NodeID = "open_chest"
	NodeAttackSleeper story.NodeID = "attack_sleeper"
	NodeFightAwake    story.NodeID = "fight_awake"
	NodeYellowDoor    story.NodeID = "yellow_door"
	NodeTrollFight    story.NodeID = "troll_fight"
	NodeTrollDead     story.NodeID = "troll_dead"
)

const (
	EndingInvalidChoice story.NodeID = "invalid_choice"
	EndingSleep         story.NodeID = "sleep"
	EndingFlee          story.NodeID = "flee"
	EndingAcceptFate    story.NodeID = "accept_fate"
	EndingOffer         story.NodeID = "offer"
	EndingWizardBurns   story.NodeID = "wizard_burns_man"
	EndingDwarfKills    story.NodeID = "dwarf_kills_man"
	EndingElfBeheaded   story.NodeID = "elf_beheaded"
	EndingTakeGold      story.NodeID = "take_gold"
	EndingLeaveGold     story.NodeID = "leave_gold"
	EndingElfTroll      story.NodeID = "elf_troll_death"
	EndingDwarfTroll    story.NodeID = "dwarf_troll_death"
	EndingCryHome       story.NodeID = "cry_home"
	EndingEnough        story.NodeID = "enough"
)

const InvalidChoiceMessage = "Kannt þú ekki að fylgja leiðbeiningum?"

var menuOfThree = []string{"1", "2", "3"}

// NewDungeonStory builds the Dýflissan graph. Text may use the {name},
// {class} and {weapon} placeholders.
func NewDungeonStory() *story.Graph {
	g := story.NewGraph(NodeName, EndingInvalidChoice)

	addNodes(g)
	addEndings(g)
	connect(g)

	return g
}

func addNodes(g *story.Graph) {
	g.AddNode(story.Node{
		ID:      NodeName,
		Prompt:  "Hvað heitir þú?: ",
		Kind:    story.PromptFree,
		Capture: story.CaptureName,
	})
	g.AddNode(story.Node{
		ID:      NodeClass,
		Prompt:  "Ertu álfur(1), dvergur(2) eða galdramaður(3)?: ",
		Kind:    story.PromptMenu,
		Options: menuOfThree,
		Capture: story.CaptureClass,
	})
	g.AddNode(story.Node{
		ID: NodeEnter,
		Text: []string{
			"{name} {class}, vilt þú fara inn í Dýflissuna og leita að gullinu",
			"(J eða N):",
		},
		Kind: story.PromptBinary,
	})
	g.AddNode(story.Node{
		ID: NodeDungeon,
		Text: []string{
			"Þú ert kominn inn í Dýflissuna.",
			"Á móti þér er græn hurð og við hliðina á þér gul hurð.",
			"Viltu fara inn um grænu hurðina (1),",
			"opna gulu hurðina (2) eða flýja (3)",
		},
		Kind:    story.PromptMenu,
		Options: menuOfThree,
	})
	g.AddNode(story.Node{
		ID: NodeGreenDoor,
		Text: []string{
			"Þú ferð inn um hurðina.",
			"Þú sérð sofandi mann með sverð og fyrir aftan hann er kista.",
			"Viltu læðast framhjá manninum (1) eða ráðast á hann (2)?",
		},
		Kind:    story.PromptMenu,
		Options: []string{"1", "2"},
	})
	g.AddNode(story.Node{
		ID: NodeChest,
		Text: []string{
			"Þú kemst að kistunni án þess að vekja manninn. viltu opna kistuna?(J eða N)",
		},
		Prompt: ">",
		Kind:   story.PromptBinary,
	})
	g.AddNode(story.Node{
		ID: NodeOpenChest,
		Text: []string{
			"Þú opnar kistuna og sérð poka af gulli.",
			"Þú tekur pokann, en um leið vaknar maðurinn og ræðst á þig.",
			"Viltu berjast (1), bjóða honum gullpening (2)",
			"eða sættast við örlögin þín (3)?",
		},
		Kind:    story.PromptMenu,
		Options: menuOfThree,
	})
	g.AddNode(story.Node{
		ID: NodeAttackSleeper,
		Text: []string{
			"Þú ræðst á manninn með {weapon}.",
			"Hann öskrar úr hræðslu og spyr 'afhverju?...' áður enn hann deyr.",
			"Þú opnar kistuna skömmustulega. Í henni sérðu poka fullan af gulli.",
			"Viltu taka gullið?(J eða N):",
		},
		Kind: story.PromptBinary,
		Arms: true,
	})
	g.AddNode(story.Node{
		ID:   NodeFightAwake,
		Kind: story.PromptClass,
		Arms: true,
	})
	g.AddNode(story.Node{
		ID: NodeYellowDoor,
		Text: []string{
			"Þú ferð inn um hurðina.",
			"Fyrir framan þig stendur tröll með kylfu.",
			"Fyrri aftan tröllið er hurð",
			"Tröllið sér þig og gerir sig tilbúið til þess að lemja þig með kylfunni sinni",
			"Viltu berjast (1), Hlaupa að hurðinni (2) eða flýja (3)",
		},
		Prompt:  ">",
		Kind:    story.PromptMenu,
		Options: menuOfThree,
	})
	g.AddNode(story.Node{
		ID:   NodeTrollFight,
		Kind: story.PromptClass,
		Arms: true,
	})
	g.AddNode(story.Node{
		ID:     NodeTrollDead,
		Text:   []string{"Viltu fara í gegnum hurðina? (J eða N)"},
		Prompt: ">",
		Kind:   story.PromptBinary,
	})
}

func addEndings(g *story.Graph) {
	endings := []story.Ending{
		{ID: EndingInvalidChoice, Text: []string{"", InvalidChoiceMessage, "Endir"}},
		{ID: EndingSleep, Text: []string{"Þú ferð heima að sofa... Endir"}},
		{ID: EndingFlee, Text: []string{"Þú flýrð heim eins og aumingji... Endir"}},
		{ID: EndingAcceptFate, Text: []string{
			"Þú lokar augunum. Maðurinn stingur þig í magann og þér blæðir út. Hvað vartsu að pæla?",
		}},
		{ID: EndingOffer, Text: []string{
			"Þú bíður manninum gull pening.",
			"Hann þakkar þér fyrir og fer aftur að sofa.",
			"Þú ferð heim með gullið og bros á vör. Vel gert! Endir",
		}},
		{ID: EndingWizardBurns, Text: []string{
			"Þú skýtur manninn með eldbolta úr {weapon}.",
			"Hann öskrar úr hræðslu og spyr 'afhverju?...' áður enn hann brennur til dauða.",
			"Þú ferð heim með gullið. Endir",
		}},
		{ID: EndingDwarfKills, Text: []string{
			"Þú ræðst á manninn með {weapon}.",
			"Hann öskrar úr hræðslu og spyr 'afhverju?...' áður enn hann deyr.",
			"Þú ferð heim með gullið. Endir",
		}},
		{ID: EndingElfBeheaded, Text: []string{
			"Þú reynir að stinga manninn með {weapon} en hann sker af þér hausinn áður en þú nærð því. Endir.",
		}},
		{ID: EndingTakeGold, Text: []string{
			"Þú tekur pokann og ferð heim með tárin í augunum. Endir",
		}},
		{ID: EndingLeaveGold, Text: []string{
			"Þú tekur ekki gullið og ferð heim með tárin í augunum. Hvað ertu að pæla? Endir",
		}},
		{ID: EndingElfTroll, Text: []string{
			"Þú stingur tröllið með {weapon}. Það gerir ekkert og tröllið drepur þig. Endir",
		}},
		{ID: EndingDwarfTroll, Text: []string{
			"Þú skerð vinstri fót tröllsins af með {weapon}. Það gerir tröllið einungis reiðara og það drepur þig. Endir",
		}},
		{ID: EndingCryHome, Text: []string{
			"Þú grætur eins og smábarn og hleypur heim með kúkinn í brókunum",
		}},
		{ID: EndingEnough, Text: []string{"Þú hefur fengið nóg og ferð heim. Endir"}},
	}
	for _, e := range endings {
		g.AddEnding(e)
	}
}

func connect(g *story.Graph) {
	node := story.ToNode
	ending := story.ToEnding
	elf, dwarf, wizard := player.ClassElf.String(), player.ClassDwarf.String(), player.ClassWizard.String()

	g.Connect(NodeName, story.TokenAny, story.Edge{To: node(NodeClass)})
	for _, option := range menuOfThree {
		g.Connect(NodeClass, option, story.Edge{To: node(NodeEnter)})
	}

	g.Connect(NodeEnter, story.TokenYes, story.Edge{To: node(NodeDungeon)})
	g.Connect(NodeEnter, story.TokenNo, story.Edge{To: ending(EndingSleep)})

	g.Connect(NodeDungeon, "1", story.Edge{To: node(NodeGreenDoor)})
	g.Connect(NodeDungeon, "2", story.Edge{To: node(NodeYellowDoor)})
	g.Connect(NodeDungeon, "3", story.Edge{To: ending(EndingFlee)})

	g.Connect(NodeGreenDoor, "1", story.Edge{To: node(NodeChest)})
	g.Connect(NodeGreenDoor, "2", story.Edge{To: node(NodeAttackSleeper)})

	g.Connect(NodeChest, story.TokenYes, story.Edge{To: node(NodeOpenChest)})
	g.Connect(NodeChest, story.TokenNo, story.Edge{To: ending(EndingSleep)})

	g.Connect(NodeOpenChest, "1", story.Edge{To: node(NodeFightAwake)})
	g.Connect(NodeOpenChest, "2", story.Edge{To: ending(EndingOffer)})
	g.Connect(NodeOpenChest, "3", story.Edge{To: ending(EndingAcceptFate)})

	g.Connect(NodeFightAwake, wizard, story.Edge{To: ending(EndingWizardBurns)})
	g.Connect(NodeFightAwake, dwarf, story.Edge{To: ending(EndingDwarfKills)})
	g.Connect(NodeFightAwake, elf, story.Edge{To: ending(EndingElfBeheaded)})

	g.Connect(NodeAttackSleeper, story.TokenYes, story.Edge{To: ending(EndingTakeGold)})
	g.Connect(NodeAttackSleeper, story.TokenNo, story.Edge{To: ending(EndingLeaveGold)})

	g.Connect(NodeYellowDoor, "1", story.Edge{To: node(NodeTrollFight)})
	g.Connect(NodeYellowDoor, "2", story.Edge{
		Text: []string{"Þú kemst að hurðinni rétt áður en tröllið nær að kremja þig"},
		To:   node(NodeGreenDoor),
	})
	g.Connect(NodeYellowDoor, "3", story.Edge{To: ending(EndingCryHome)})

	g.Connect(NodeTrollFight, elf, story.Edge{To: ending(EndingElfTroll)})
	g.Connect(NodeTrollFight, dwarf, story.Edge{To: ending(EndingDwarfTroll)})
	g.Connect(NodeTrollFight, wizard, story.Edge{
		Text: []string{"Þú býrð til eldbolta með {weapon} og brennir tröllið upp til agna."},
		To:   node(NodeTrollDead),
	})

	g.Connect(NodeTrollDead, story.TokenYes, story.Edge{To: node(NodeGreenDoor)})
	g.Connect(NodeTrollDead, story.TokenNo, story.Edge{To: ending(EndingEnough)})
}
