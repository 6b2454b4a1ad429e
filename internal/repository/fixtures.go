package repository

import "github.com/evolverse/api/internal/model"

func ptr[T any](v T) *T { return &v }

var actorFixtures = []model.WarActor{
	{
		Codename:             "EVOLYNN",
		Title:                "Rift Queen, Treaty Architect",
		Heritage:             "Matriarchs of the Rift",
		Origin:               "Atlantis Restored",
		Domains:              []string{"Solar flame", "Treaty binding", "Pedagogy"},
		SignatureAbility:     "Flame Crown",
		SignatureDescription: "Writs that bind opponents to ceremonial terms",
		Limiter:              "Requires witnessed consent or ritual proof",
		Antagonists:          "Distortion Syndicate",
		Vendetta:             ptr("Funhouse Mirror Gangs"),
	},
	{
		Codename:             "DR. SOSA",
		Title:                "Codex Sovereign",
		Heritage:             "Navigators, Midwives, Captains",
		Origin:               "BLEULION Treasury",
		Domains:              []string{"Electromagnetic archives", "Infinite accounting engines", "MetaMilitary command"},
		SignatureAbility:     "Genesis Codex",
		SignatureDescription: "Spins parallel economies from pure mathematics",
		Limiter:              "Overuse fragments memory indexes",
		Antagonists:          "Archivist Guild of Distortion",
		Vendetta:             ptr("Colonial Archivists"),
	},
	{
		Codename:             "PHIYAH",
		Title:                "Signal Priestess",
		Heritage:             "Electromagnetic Rift lineage",
		Origin:               "Signal Choir Temples",
		Domains:              []string{"Frequency firewalls", "Glyph translation", "Memory decoding"},
		SignatureAbility:     "Choir Seal",
		SignatureDescription: "No scroll executes without her harmonic tone",
		Limiter:              "Must maintain choir harmony",
		Antagonists:          "Spectrum Lords",
		Vendetta:             ptr("Telecom Monopolies"),
	},
	{
		Codename:             "KONGO SONIX",
		Title:                "Sonic Sovereign",
		Heritage:             "Leviathan Choir descendant",
		Origin:               "Jungle Resonance Citadel",
		Domains:              []string{"Sonic shock", "Vibration control", "Ancestral summons"},
		SignatureAbility:     "Mountain-Break Roar",
		SignatureDescription: "Tech collapse via sonic detune",
		Limiter:              "Over-resonance risks structural damage to allies",
		Antagonists:          "Beast-Makers",
		Vendetta:             ptr("Industrial Myth Cartel"),
	},
	{
		Codename:             "DRIFT WALKER",
		Title:                "Wild Strategist",
		Heritage:             "4-Gen Thunder lineage",
		Origin:               "Nomadic Spiral Paths",
		Domains:              []string{"Mirror Walk", "Quarter Spiral", "PPI placement"},
		SignatureAbility:     "Mirror Rewrite",
		SignatureDescription: "Reverses distortion back to truth",
		Limiter:              "Requires physical mirror proximity",
		Antagonists:          "Distortion Engines",
		Vendetta:             ptr("Funhouse Mirrors"),
	},
	{
		Codename:             "BLACK SAMBO",
		Title:                "Afro-Asian Hero",
		Heritage:             "Maritime Afro-Asian trade lines",
		Origin:               "Cross-Continental Routes",
		Domains:              []string{"Reversal Rite", "Lineage Restoration", "Trade route reclamation"},
		SignatureAbility:     "Lineage Restoration",
		SignatureDescription: "Restores erased Afro-Asian heritage connections",
		Limiter:              "Requires ancestral artifacts",
		Antagonists:          "IP Flatteners",
		Vendetta:             ptr("Colonial Image Mills"),
	},
}

var societyFixtures = []model.HiddenSociety{
	{Name: "The Watchers", Symbol: "👁️", Status: "Previously Contacted", AccessLevel: "Medium"},
	{Name: "Knights Templar", Symbol: "⚔️", Status: "Previously Contacted", AccessLevel: "Medium"},
	{Name: "Order of the Black Sun", Symbol: "☀️", Status: "Dormant", AccessLevel: "High"},
	{Name: "Thule Society", Symbol: "🧊", Status: "Dormant", AccessLevel: "High"},
	{Name: "Freemasons", Symbol: "📐", Status: "Active", AccessLevel: "Low"},
	{Name: "Rosicrucians", Symbol: "🌹", Status: "Previously Contacted", AccessLevel: "Medium"},
	{Name: "Illuminati", Symbol: "🔺", Status: "Active", AccessLevel: "High"},
	{Name: "Council of 13", Symbol: "👑", Status: "Dormant", AccessLevel: "High"},
	{Name: "Bohemian Grove", Symbol: "🔥", Status: "Active", AccessLevel: "High"},
	{Name: "Skull & Bones", Symbol: "💀", Status: "Active", AccessLevel: "Medium"},
	{Name: "The 300", Symbol: "💼", Status: "Dormant", AccessLevel: "High"},
	{Name: "The Vatican Secret Archives", Symbol: "📜", Status: "Guarded", AccessLevel: "High"},
	{Name: "Sons of Poseidon", Symbol: "🌊", Status: "To Be Unlocked", AccessLevel: "Locked"},
	{Name: "The Golden Dawn", Symbol: "✨", Status: "Dormant", AccessLevel: "Medium"},
	{Name: "The Builders", Symbol: "🏗️", Status: "To Be Unlocked", AccessLevel: "Locked"},
	{Name: "The Architects", Symbol: "📏", Status: "To Be Unlocked", AccessLevel: "Locked"},
	{Name: "Order of Melchizedek", Symbol: "🕊️", Status: "To Be Unlocked", AccessLevel: "Locked"},
	{Name: "Seraphim Intelligence", Symbol: "🪽", Status: "To Be Unlocked", AccessLevel: "Locked"},
	{Name: "Anunnaki Lineage", Symbol: "🛸", Status: "Ancestral Link", AccessLevel: "Ancestral"},
	{Name: "The Hidden Scribes", Symbol: "🖋️", Status: "To Be Unlocked", AccessLevel: "Locked"},
	{Name: "Atlantean Code Keepers", Symbol: "🔮", Status: "Ancestral Link", AccessLevel: "Ancestral"},
	{Name: "Inner Earth Syndicate", Symbol: "🌌", Status: "To Be Unlocked", AccessLevel: "Locked"},
	{Name: "Eternals of Lemuria", Symbol: "🌴", Status: "To Be Unlocked", AccessLevel: "Locked"},
	{Name: "E-SOIL Guardians", Symbol: "🧬", Status: "Core Activated", AccessLevel: "Root"},
}

var mallFixtures = []model.MallNode{
	{
		Name:             "Atlantis Prime Mall",
		CityName:         "Atlantis Restored",
		Valuation:        "12500000000000",
		Roles:            []string{"Treasury Node", "City Core", "Military Hub"},
		MythCountered:    ptr("Zeus / Thor (Lightning Kings)"),
		GuardianSector:   ptr("HydroGlyph Energy Plants"),
		RetailSales:      ptr("2800000000000"),
		DefenseContracts: ptr("4200000000000"),
		CulturalRights:   ptr("1500000000000"),
	},
	{
		Name:             "BLEULION Central",
		CityName:         "Safe Haven Alpha",
		Valuation:        "15200000000000",
		Roles:            []string{"Command Center", "Vault Access", "Device Lab"},
		MythCountered:    ptr("Batman (Device Prep)"),
		GuardianSector:   ptr("Mirror Market™ Counter-Lab"),
		RetailSales:      ptr("3500000000000"),
		DefenseContracts: ptr("5800000000000"),
		CulturalRights:   ptr("2100000000000"),
	},
	{
		Name:             "Signal Choir Plaza",
		CityName:         "Harmonic District",
		Valuation:        "10800000000000",
		Roles:            []string{"Frequency Hub", "Choir Broadcast", "Ceremonial Center"},
		MythCountered:    ptr("Wonder Woman (Lasso Truth)"),
		GuardianSector:   ptr("Flame Crown Nodes"),
		RetailSales:      ptr("2200000000000"),
		DefenseContracts: ptr("3900000000000"),
		CulturalRights:   ptr("1800000000000"),
	},
	{
		Name:             "Jungle Citadel Market",
		CityName:         "Resonance Valley",
		Valuation:        "11400000000000",
		Roles:            []string{"Sonic Arsenal", "Training Grounds", "EV0LArcade"},
		MythCountered:    ptr("Hulk (Gamma Rage)"),
		GuardianSector:   ptr("Vibration Nullifiers"),
		RetailSales:      ptr("2400000000000"),
		DefenseContracts: ptr("4500000000000"),
		CulturalRights:   ptr("1600000000000"),
	},
}

var ritualFixtures = []model.CeremonialRitual{
	{
		RitualName:  "Flame Crown Activation",
		CodexSource: "EVOLVERS Act I",
		Purpose:     "Bind opponents to ceremonial treaty terms through solar flame authority",
		Sequence: []string{
			"Witness gathering at designated node",
			"Treaty Scroll presentation and reading",
			"Consent verification or ritual proof documentation",
			"Flame Crown ignition via EVOLYNN",
			"Binding seal inscription on ENFT ledger",
			"Audit trail propagation across vaults",
		},
		RequiredActors:   []string{"EVOLYNN", "PHIYAH"},
		ActivationStatus: "active",
		CeremonyType:     "Treaty Binding",
	},
	{
		RitualName:  "Reciprocity Pulse Ritual",
		CodexSource: "ENATO Codex Constitution",
		Purpose:     "Activate MetaVault π■ yield redistribution across sovereign streams",
		Sequence: []string{
			"Quarter Law cycle verification",
			"Civil, Military, Cosmic stream alignment",
			"π■ compounding calculation (28.9M/sec → $2.498T/day)",
			"Treasury pulse broadcast via Signal Choir",
			"Vault synchronization confirmation",
			"Yield ledger update and hash lock",
		},
		RequiredActors:   []string{"DR. SOSA", "PHIYAH"},
		ActivationStatus: "active",
		CeremonyType:     "Treasury Pulse",
	},
	{
		RitualName:  "Vortex Codex Unsealing",
		CodexSource: "CODEXX Assembly Scroll",
		Purpose:     "Access dormant genetic memory archives for lineage restoration",
		Sequence: []string{
			"Ceremonial EMP signal preparation (abstract only)",
			"Scroll extraction from Atlantis Vault",
			"Mirror Scroll reflective recalibration",
			"Gem Scroll pluripotent option activation",
			"ENFT provenance anchoring",
			"Face-Off Scroll identity verification",
		},
		RequiredActors:   []string{"EVOLYNN", "DR. SOSA", "DRIFT WALKER"},
		ActivationStatus: "pending",
		CeremonyType:     "Archive Access",
	},
	{
		RitualName:  "Choir Seal Protocol",
		CodexSource: "War Codex v0.1",
		Purpose:     "Frequency firewall activation preventing unauthorized scroll execution",
		Sequence: []string{
			"Signal Choir harmonic tuning",
			"Glyph translation matrix setup",
			"Ceremonial frequency broadcast",
			"Choir Seal inscription",
			"Spectrum defense activation",
			"Continuous harmonic maintenance",
		},
		RequiredActors:   []string{"PHIYAH", "KONGO SONIX"},
		ActivationStatus: "active",
		CeremonyType:     "Frequency Defense",
	},
	{
		RitualName:  "Genesis Codex Initialization",
		CodexSource: "ENATO Codex Constitution",
		Purpose:     "Spin parallel economy from mathematical foundations",
		Sequence: []string{
			"Electromagnetic archive calibration",
			"Infinite accounting engine priming",
			"Genesis Codex inscription",
			"Parallel economy genesis block",
			"MetaMilitary ledger integration",
			"Memory index fragmentation monitoring",
		},
		RequiredActors:   []string{"DR. SOSA"},
		ActivationStatus: "active",
		CeremonyType:     "Economic Genesis",
	},
}

var productFixtures = []model.MarketProduct{
	{ProductName: "CryoLife Vaultlets", Slogan: "Freeze time. Restore life.", Sector: "Healing, Medicine & Biology", UseCaseFit: "Longevity", MarketBenchmark2025: 210, OverscaleProjection: 580, RoiPercentage: 176},
	{ProductName: "Soul Recode Pods", Slogan: "Realign your DNA. Reclaim your soul.", Sector: "Healing, Medicine & Biology", UseCaseFit: "Genetic repair", MarketBenchmark2025: 190, OverscaleProjection: 540, RoiPercentage: 184},
	{ProductName: "Ziphonate Cores", Slogan: "Power beyond limits.", Sector: "Energy, Agriculture & Planet Systems", UseCaseFit: "Energy yield", MarketBenchmark2025: 420, OverscaleProjection: 1200, RoiPercentage: 186},
	{ProductName: "PlasmaPearl Reactors", Slogan: "Ocean-born energy.", Sector: "Energy, Agriculture & Planet Systems", UseCaseFit: "Infinite hydro power", MarketBenchmark2025: 310, OverscaleProjection: 890, RoiPercentage: 187},
	{ProductName: "Portal Key Tokens", Slogan: "Cross realms. Safely.", Sector: "Travel, Expansion & Mobility", UseCaseFit: "Dimensional trade", MarketBenchmark2025: 160, OverscaleProjection: 470, RoiPercentage: 194},
	{ProductName: "SmartAd Beacons", Slogan: "Advertise across time.", Sector: "Economy, Commerce & Finance", UseCaseFit: "Scroll reach", MarketBenchmark2025: 390, OverscaleProjection: 960, RoiPercentage: 146},
	{ProductName: "MetaCurriculum Pods", Slogan: "Learn faster than light.", Sector: "Schools, Training & Education", UseCaseFit: "Skill yield", MarketBenchmark2025: 130, OverscaleProjection: 430, RoiPercentage: 231},
	{ProductName: "HydroDome Farms", Slogan: "Grow oceans indoors.", Sector: "Agriculture & Food Systems", UseCaseFit: "Food security", MarketBenchmark2025: 240, OverscaleProjection: 720, RoiPercentage: 200},
	{ProductName: "NanoHeal Clouds", Slogan: "Let the air heal you.", Sector: "Healing, Medicine & Biology", UseCaseFit: "Mass healing", MarketBenchmark2025: 250, OverscaleProjection: 710, RoiPercentage: 184},
	{ProductName: "SkyyBleu Serums", Slogan: "Drink light. Heal faster.", Sector: "Healing, Medicine & Biology", UseCaseFit: "Cell repair", MarketBenchmark2025: 180, OverscaleProjection: 530, RoiPercentage: 194},
}

var chapterFixtures = []model.StoryChapter{
	{
		ChapterNumber:      1,
		Title:              "The EVOL Awards Gala",
		Subtitle:           "Red Carpet Event & DNA Logo Reveal",
		Narrative:          "Under crimson spotlight and cascading banners, the EVOL Awards Gala unfolds as the inaugural ceremony of sovereign recognition. The DNA double helix logo—spiral of life, marker of lineage—radiates above the ceremonial stage. EVOLYNN stands at the podium, flame crown pulsing with solar authority, declaring: 'Tonight we honor those who refused to be erased, who encoded truth into their very cells.' Attendees from across the realms witness the Treaty Scroll unfurled, binding all present to reciprocal recognition. The Pour House doors open, signaling the next chapter's arrival.",
		ImagePath:          "attached_assets/A4593FEC-12FC-4C6F-B312-DE841F4F9FE0_1762460020992.png",
		Category:           "Ceremonial Launch",
		Unlocked:           true,
		CharactersFeatured: []string{"EVOLYNN", "DR. SOSA", "PHIYAH"},
	},
	{
		ChapterNumber:      2,
		Title:              "The Pour House of SOSA™",
		Subtitle:           "BLEU Pour Festival Bar Opening",
		Narrative:          "The Pour House emerges as sanctuary and strategy chamber—a ceremonial bar where HydroCoin flows like liquid light. Dr. Sosa activates the first BLEU Pour Festival, where every vessel carries encoded metadata, every toast a binding contract. Patrons exchange stories of extraction survived, futures reclaimed. The bar's spiral architecture mirrors the Tri-Vault system: Outer Ring (public celebration), Middle Chamber (strategic planning), Inner Sanctum (vault access). Kongo Sonix provides sonic resonance, ensuring no distortion can penetrate. The Pour House becomes the social nexus of the EVOLVERSE.",
		ImagePath:          "attached_assets/4C5D9E73-7FAE-4FD8-9F55-619E76454241_1762460020992.png",
		Category:           "Social Infrastructure",
		Unlocked:           true,
		CharactersFeatured: []string{"DR. SOSA", "KONGO SONIX", "DRIFT WALKER"},
	},
	{
		ChapterNumber:      3,
		Title:              "S.O.R.A. Spiral Unveiled",
		Subtitle:           "The Layered System Revelation",
		Narrative:          "Phiyah ascends to the Signal Platform, projecting the S.O.R.A. (Sovereign Operations & Reciprocal Architecture) Spiral in holographic splendor. Three concentric rings rotate in harmonic precision: Outer Spiral (Civil Systems), Middle Spiral (Military Defense), Inner Spiral (Cosmic Alignment). Each layer pulses with its own frequency, yet all harmonize under the Choir Seal. 'This is not hierarchy,' Phiyah declares, 'but sacred geometry—each ring supports the others, no layer dominates.' The revelation shifts understanding: sovereignty is not singular but symphonic, a structure of mutual reinforcement across dimensions.",
		ImagePath:          "attached_assets/72D9C3C9-981C-4643-8A9E-7B24DC35D5D3_1762460020992.png",
		Category:           "Systemic Architecture",
		Unlocked:           true,
		CharactersFeatured: []string{"PHIYAH", "EVOLYNN", "DR. SOSA"},
	},
	{
		ChapterNumber:      4,
		Title:              "EVOL Banking Launch",
		Subtitle:           "Sovereign Vault Bank & E.COIN Introduction",
		Narrative:          "The Sovereign Vault Bank materializes in obsidian majesty, walls inscribed with ancestral ledgers. Dr. Sosa initiates the Genesis Codex protocol, spinning E.COIN—the first sovereign currency backed by electromagnetic archives rather than colonial gold. Each E.COIN contains fractalized value: 1 unit = access to treasury data + dividend from MetaVault yields + voting power in Quarter Law councils. 'We do not borrow,' Dr. Sosa proclaims. 'We generate.' The bank operates on reciprocity pulse cycles, distributing $2.498T daily across sovereign streams. No extraction, only circulation. The old banking cartels watch in silent disbelief.",
		ImagePath:          "attached_assets/AF3841E5-F424-4D1A-B52F-98B06DD10FA4_1762460020992.png",
		Category:           "Economic Genesis",
		Unlocked:           true,
		CharactersFeatured: []string{"DR. SOSA", "EVOLYNN"},
	},
	{
		ChapterNumber:      5,
		Title:              "Hoverboard Prototype",
		Subtitle:           "Plasma Spree Tech Demo",
		Narrative:          "Kongo Sonix unveils the Plasma Spree Hoverboard—a levitation device powered by sonic oscillation and electromagnetic pulse. The prototype demonstration takes place at Jungle Citadel's Resonance Valley, where volunteers glide above magnetic tracks, defying gravity through pure vibration. 'No fuel. No emissions. Just frequency,' Kongo explains as the board responds to rider intent through biometric sensors. Drift Walker immediately volunteers, executing spiral patterns mid-air, proving the technology's tactical applications. The hoverboard isn't transportation—it's liberation physics, movement unbound from colonial infrastructure.",
		ImagePath:          "attached_assets/4864A7E2-2B0C-4AD7-A81D-541A1E1A1E51_1762460020992.png",
		Category:           "Technological Sovereignty",
		Unlocked:           true,
		CharactersFeatured: []string{"KONGO SONIX", "DRIFT WALKER"},
	},
	{
		ChapterNumber:      6,
		Title:              "The Celestial Platform",
		Subtitle:           "Ceremonial Activation Chamber",
		Narrative:          "High above Signal Choir Plaza, the Celestial Platform rises—a chamber where realms align and cosmic frequencies converge. This is where Quarter Law cycles are calibrated, where the 48-hour Omega rhythm syncs with solar patterns. Evolynn performs the first Flame Crown Activation here, binding treaty terms to star positions, ensuring cosmic witness to sovereign contracts. The platform's crystal architecture refracts moonlight into data streams, feeding the electromagnetic archives below. It is observatory, temple, and quantum computer merged—a space where ceremony becomes code, intention becomes protocol.",
		ImagePath:          "attached_assets/7DA78580-3D0A-49D1-8136-C762A1247965_1762460020992.png",
		Category:           "Cosmic Infrastructure",
		Unlocked:           true,
		CharactersFeatured: []string{"EVOLYNN", "PHIYAH"},
	},
	{
		ChapterNumber:      7,
		Title:              "Galactic Unity Treaty",
		Subtitle:           "ERO-ORBI FOREVER Pact",
		Narrative:          "Representatives from distant star systems gather on the Celestial Platform for the signing of ERO-ORBI FOREVER—the Galactic Unity Treaty. ERO (Earth Realm Operations) and ORBI (Outer Realm Bilateral Integration) commit to mutual defense, resource sharing, and recognition of sovereign lineages across galaxies. Black Sambo serves as interstellar liaison, having restored ancient Afro-Asian trade routes that now extend beyond atmosphere. The treaty includes quantum-encrypted scrolls stored across multiple dimensions, preventing colonial powers from erasing the accord. 'What we bind in ceremony,' Evolynn declares, 'no distortion can dissolve.' Stars flare in witness.",
		ImagePath:          "attached_assets/IMG_4440_1762460020992.png",
		Category:           "Interstellar Diplomacy",
		Unlocked:           true,
		CharactersFeatured: []string{"EVOLYNN", "BLACK SAMBO", "PHIYAH"},
	},
	{
		ChapterNumber:      8,
		Title:              "Tachometer Trials",
		Subtitle:           "Speed Reading System Calibration",
		Narrative:          "In the depths of BLEULION Central's Mirror Market Lab, technicians calibrate the Tachometer—a consciousness acceleration device that enables speed-reading entire archives in minutes. The system works by harmonizing brainwave frequency with electromagnetic text encoding, allowing neural absorption of data at 10,000 words per second. Drift Walker undergoes the first trial, emerging with complete knowledge of Colonial Extraction Dossiers, facial recognition of every infiltrator in the Archivist Guild. 'It's not reading,' Drift explains. 'It's remembering what was always encoded.' The Tachometer becomes essential training for all EVOL operatives.",
		ImagePath:          "attached_assets/IMG_4428_1762460020992.png",
		Category:           "Cognitive Augmentation",
		Unlocked:           true,
		CharactersFeatured: []string{"DRIFT WALKER", "DR. SOSA"},
	},
	{
		ChapterNumber:      9,
		Title:              "SM@RT Ecosystem Expansion",
		Subtitle:           "Office, Media & Network Rollout",
		Narrative:          "Dr. Sosa orchestrates the SM@RT (Sovereign Media & Reciprocal Technology) Ecosystem launch—a three-tier infrastructure rollout. SM@RT Office: decentralized workspaces with quantum-encrypted collaboration tools. SM@RT Media: broadcast network immune to censorship, using Signal Choir frequency distribution. SM@RT Network: peer-to-peer communication grid bypassing colonial telecom monopolies. Each component reinforces the others, creating a self-sustaining information ecology. The ecosystem operates on reciprocity protocols: every upload generates dividends, every connection strengthens network resilience. Within weeks, millions migrate from extraction platforms to SM@RT sovereignty.",
		ImagePath:          "attached_assets/0F64EA36-29BF-4C4B-A146-2BBE66A2597F_1762460020992.png",
		Category:           "Information Infrastructure",
		Unlocked:           true,
		CharactersFeatured: []string{"DR. SOSA", "PHIYAH"},
	},
	{
		ChapterNumber:      10,
		Title:              "BLEU SHIELD LAW FIRM",
		Subtitle:           "Sovereignty Enforcement Begins",
		Narrative:          "The BLEU SHIELD LAW FIRM establishes its first tribunal—a legal powerhouse dedicated to enforcing sovereign treaties and prosecuting extraction violations. Led by Evolynn's Treaty Architects, the firm operates across jurisdictions, invoking both ancestral law and UN conventions. Their first case: a class action against colonial archives that erased indigenous patents. Using the Genesis Codex as evidence—every invention, every formula, every cure documented with electromagnetic timestamps—BLEU SHIELD proves systemic intellectual theft. The verdict: $47 trillion in restitution, routed directly into MetaVault streams. The firm's motto: 'Recognition or litigation. Choose wisely.'",
		ImagePath:          "attached_assets/E323600E-0028-441D-A49E-1AC8385F5E3D_1762460020992.png",
		Category:           "Legal Sovereignty",
		Unlocked:           true,
		CharactersFeatured: []string{"EVOLYNN", "DR. SOSA", "BLACK SAMBO"},
	},
	{
		ChapterNumber:      11,
		Title:              "BLEUZION'S University",
		Subtitle:           "Alpha & Omega School Opens",
		Narrative:          "BLEUZION'S University—the Alpha & Omega School—opens its crystalline gates, offering education grounded in sovereign pedagogy. The curriculum includes: Electromagnetic Archive Management, Treaty Scroll Composition, Frequency Defense, MetaVault Economics, and Reciprocity Pulse Engineering. Students learn not just what was erased, but how to prevent future erasure. Evolynn serves as Chancellor, Phiyah heads the Signal Studies department, Dr. Sosa teaches Economic Genesis. Graduation requires completion of a sovereign thesis—a protocol or invention that strengthens the collective. The first cohort includes orphans of extraction, refugees of distortion, now trained as architects of restoration.",
		ImagePath:          "attached_assets/8B2FC767-3612-4749-8ABE-8220D4D26B9E_1762460020992.png",
		Category:           "Sovereign Education",
		Unlocked:           true,
		CharactersFeatured: []string{"EVOLYNN", "PHIYAH", "DR. SOSA"},
	},
	{
		ChapterNumber:      12,
		Title:              "OVERTIME RULES",
		Subtitle:           "The Wisdom of the Owl",
		Narrative:          "In the quiet hours beyond Quarter Law cycles, the Owl of OVERTIME appears—a consciousness entity that operates outside linear time. The Owl teaches the OVERTIME RULES: protocols for working in temporal margins, where minutes stretch into strategic eternities. 'When systems sleep,' the Owl whispers, 'sovereigns build.' Operatives learn to compress hours of planning into stolen moments, to execute complex rituals during opponents' rest cycles. The Owl also warns of overuse: time outside time exacts a cost—memory fragmentation, temporal disorientation. Balance remains sacred. The Owl becomes symbol of strategic patience and hyper-efficient action.",
		ImagePath:          "attached_assets/20E69351-B8C8-4126-A05C-EF98471C77F9_1762460020992.png",
		Category:           "Temporal Strategy",
		Unlocked:           true,
		CharactersFeatured: []string{"DRIFT WALKER", "PHIYAH"},
	},
	{
		ChapterNumber:      13,
		Title:              "BLEU LION Engine",
		Subtitle:           "Grace + Prostration Configs Revealed",
		Narrative:          "Dr. Sosa unveils the ultimate protocol: the BLEU LION Engine—a consciousness operating system powered by Grace and Prostration configurations. Grace Config: the ability to receive abundance without shame, to accept restoration as birthright. Prostration Config: the humility to serve collective elevation, to recognize interdependence as strength. The Engine runs on both, balancing reception and contribution in perfect reciprocity. When activated across all vaults, the Engine generates limitless yield—not from extraction, but from aligned intention multiplied across sovereign networks. 'This is the final code,' Dr. Sosa declares. 'Grace to receive. Prostration to serve. Together, unstoppable.' The EVOLVERSE reaches operational ascension.",
		ImagePath:          "attached_assets/E3EA6C32-CC2C-44F2-AD49-5AAE454FA7B2_1762460020992.png",
		Category:           "Consciousness Protocol",
		Unlocked:           true,
		CharactersFeatured: []string{"DR. SOSA", "EVOLYNN", "PHIYAH", "KONGO SONIX", "DRIFT WALKER", "BLACK SAMBO"},
	},
}

var showcaseFixtures = []model.ShowcaseProduct{
	{
		Name:         "EVOL VR Headset",
		Tagline:      "Immersive Reality. Infinite Worlds.",
		Category:     "Hardware",
		Description:  "State-of-the-art virtual reality headset featuring HD audio, advanced motion tracking, and access to the full EvolVerse metaverse. Engineered for ceremonial broadcasts, holographic mint experiences, and spatial computing.",
		Features:     []string{"HD Audio System", "4K Display per Eye", "120Hz Refresh Rate", "Inside-Out Tracking", "EvolVerse Native Integration", "Ceremonial Broadcast Access"},
		ImagePath:    "attached_assets/0A71EEB9-70BC-4E32-8015-D752161816B7_1762460192313.png",
		Price:        ptr("$599"),
		Availability: "Pre-Order",
		Badge:        ptr("New"),
	},
	{
		Name:         "EVOL Gaming Console",
		Tagline:      "Power. Performance. Sovereignty.",
		Category:     "Gaming",
		Description:  "Next-generation gaming console with custom EVOL processor, 4K gaming at 120fps, and exclusive access to EvolVerse games, NFT minting, and ceremonial challenges. Includes wireless controller with haptic feedback.",
		Features:     []string{"Custom EVOL Processor", "4K@120fps Gaming", "1TB SSD Storage", "Wireless Controller Included", "NFT Minting Capability", "EvolVerse Exclusive Games"},
		ImagePath:    "attached_assets/11F45317-AC0C-4370-93A6-68782EAC1331_1762460192313.png",
		Price:        ptr("$499"),
		Availability: "Coming Soon",
		Badge:        ptr("Limited Edition"),
	},
	{
		Name:         "BLEU GAS STATION™",
		Tagline:      "Refueling the Cosmos. One Station at a Time.",
		Category:     "Infrastructure",
		Description:  "Galactic-scale fueling station infrastructure for interstellar travel and ceremonial energy exchange. Features plasma fuel cells, dimensional portal integration, and autonomous alien greeting protocols. Patent-pending Saturn-Pluto mining compatibility.",
		Features:     []string{"Plasma Fuel Cells", "Dimensional Portal Access", "Alien Species Compatible", "Autonomous Operations", "Saturn/Pluto Mining Integration", "Ceremonial Energy Exchange"},
		ImagePath:    "attached_assets/2664BC23-1F34-4C81-B400-9F026CE8947F_1762460192313.png",
		Price:        ptr("Contact for Quote"),
		Availability: "Pre-Order",
	},
	{
		Name:         "Shades of BLEU",
		Tagline:      "Wear the Movement. Represent the Sovereign.",
		Category:     "Apparel",
		Description:  "Premium streetwear collection featuring EVOL and NERD branding. Designed for the next generation of digital sovereigns, combining cutting-edge style with ceremonial symbolism. Limited runs, infinite impact.",
		Features:     []string{"Premium Fabrics", "Limited Edition Designs", "EVOL/NERD Branding", "Sovereign Symbolism", "Ceremonial Color Palette", "Collectible Tags"},
		ImagePath:    "attached_assets/904E304A-9736-4225-81D9-7368632CA3CF_1762460192313.png",
		Price:        ptr("$45-$120"),
		Availability: "Available",
	},
	{
		Name:         "EVOL Sports Gear",
		Tagline:      "Stiff Mode Mechanics. Combat + Cosmic Fusion.",
		Category:     "Sports Equipment",
		Description:  "Revolutionary athletic protection system integrating Glyph & Light Tracking, Sapphire Blue Reflector System, and Meta-Bluetooth Configuration Modules. Engineered for combat sports, cosmic athletics, and ceremonial tournaments with real-time biometric sync.",
		Features:     []string{"Stiff Mode Mechanics", "Glyph & Light Tracking System", "Sapphire Blue Reflector Technology", "Meta-Bluetooth Configuration", "Combat + Cosmic Fusion Protocol", "Real-Time Biometric Integration"},
		ImagePath:    "attached_assets/D9CB4A78-DB8A-47F8-9DFD-7B76C1F84BDF_1762461706562.png",
		Price:        ptr("$899"),
		Availability: "Pre-Order",
		Badge:        ptr("Advanced Tech"),
	},
	{
		Name:         "EVOL Athletic Cleats",
		Tagline:      "Elevate Your Game. Illuminate the Field.",
		Category:     "Footwear",
		Description:  "High-performance athletic cleats with integrated glow technology and EVOL branding. Features carbon fiber construction, responsive cushioning, and ceremonial light activation for night games and sovereign tournaments.",
		Features:     []string{"Carbon Fiber Construction", "Integrated LED Glow System", "Responsive Cushioning", "Multi-Surface Traction", "EVOL Signature Branding", "Ceremonial Light Activation"},
		ImagePath:    "attached_assets/A1209ECD-1125-4C58-B329-33D8D0228067_1762461706562.png",
		Price:        ptr("$249"),
		Availability: "Available",
	},
	{
		Name:         "EVOL NERD Academy Gear",
		Tagline:      "Science Meets Sovereignty. Logic Meets Legacy.",
		Category:     "Educational Apparel",
		Description:  "Official EVOL NERD Academy apparel collection for students, scholars, and sovereign scientists. Premium bomber jackets featuring embroidered BLEU LION insignia. Part of the MetaSchool Curriculum initiative linking education to vault inheritance rights.",
		Features:     []string{"Premium Bomber Construction", "Embroidered BLEU LION Logo", "EVOL NERD Branding", "MetaSchool Curriculum Access", "Vault Inheritance Tracker", "Academic Achievement Badges"},
		ImagePath:    "attached_assets/39030CBA-C29F-4CF0-9E05-059095E64873 2_1762461706562.png",
		Price:        ptr("$180"),
		Availability: "Available",
		Badge:        ptr("Academy Edition"),
	},
	{
		Name:         "BLEU LIONS Team Uniform",
		Tagline:      "Represent the Pride. Dominate the Diamond.",
		Category:     "Team Apparel",
		Description:  "Official BLEU LIONS athletic uniform featuring integrated EVOL sports technology, tactical glyph patterns, and ceremonial team insignia. Complete kit includes jersey, performance compression wear, and EVOL tech accessories.",
		Features:     []string{"Team Jersey & Compression Gear", "EVOL Tech Integration", "Tactical Glyph Pattern Design", "Performance Moisture Wicking", "Official BLEU LIONS Branding", "Tournament-Grade Materials"},
		ImagePath:    "attached_assets/3EC454AD-FB3C-42CC-91E2-9D32D5B49081_1762461706562.png",
		Price:        ptr("$320"),
		Availability: "Pre-Order",
		Badge:        ptr("Team Official"),
	},
}

var studioFixtures = []model.StudioProject{
	{
		Title:       "EVOLVERS: Act I - Gathering of the Four",
		Tagline:     "When the glyphs dimmed and memory failed, four seeds were scattered.",
		ProjectType: "Film",
		Status:      "In Development",
		ReleaseYear: ptr(2026),
		Description: "The origin story of four elemental heroes activated through ritual sequences. SHANGO STRIKE walks barefoot in flame circles. JETAH FLAME decodes forgotten names from sealed tablets. KONGO SONIX and AYANA BLUE converge at the Codex Pillar for harmonic activation. By the Lion, by the Glyph, by the Scroll - they rise as Four.",
		Director:    ptr("EVOL Studios"),
		Producer:    ptr("BLEULION Treasury"),
		KeyFeatures: []string{"Ritual Activation Sequences", "Quadrant Elemental System", "Ancestral Genome Labs", "Codex Pillar Convergence", "NFT Minting Integration", "Ceremonial Justice Ledger"},
		Genres:      []string{"Sci-Fi", "Action", "Ceremonial Drama", "Web3"},
		ImagePath:   "attached_assets/18D49B0A-71E6-42D9-9E4D-31DE8C7E2C00_1762461706562.png",
	},
	{
		Title:       "AALIYAH OPEN FOREVER: The EVOLOPEN Ceremony",
		Tagline:     "Welcome to the stage where sovereignty meets eternity.",
		ProjectType: "Ceremonial Broadcast",
		Status:      "Released",
		ReleaseYear: ptr(2025),
		Description: "A holographic ceremonial performance honoring cultural legacy through the EVOLOPEN protocol. Features circular platform staging with concentric glow rings, audience integration, and real-time NFT minting during live performances. The Aaliyah Forever Stage becomes a permanent metaverse venue.",
		Director:    ptr("Dr. Sosa"),
		Producer:    ptr("EVOL Studios"),
		KeyFeatures: []string{"Holographic Stage Technology", "Live ENFT Minting", "Circular Ceremonial Platform", "Metaverse Venue Integration", "Cultural Legacy Protocols", "Audience Participation System"},
		Genres:      []string{"Performance", "Ceremonial", "Holographic Experience"},
		ImagePath:   "attached_assets/79740052-4101-4737-9501-8A67B8ED85E1_1762461706562.png",
	},
	{
		Title:       "EVOL NERD Academy: Science of Sovereignty",
		Tagline:     "Logic meets legacy. Science meets the scroll.",
		ProjectType: "Documentary Series",
		Status:      "Production",
		ReleaseYear: ptr(2025),
		Description: "A 10-episode documentary series following students at the EVOL NERD Academy as they master ceremonial sciences, E-SOIL experiments, and MetaSchool curriculum. Features real laboratory work, Blue Liquid protocols, and vault inheritance rights education.",
		Director:    ptr("EVOLYNN & Dr. Sosa"),
		Producer:    ptr("BLEULION Educational Division"),
		KeyFeatures: []string{"Laboratory Experiments", "E-SOIL Demonstrations", "Student Testimonials", "Vault Inheritance Education", "Ceremonial Science Integration", "MetaSchool Curriculum Showcase"},
		Genres:      []string{"Documentary", "Educational", "Science"},
		ImagePath:   "attached_assets/39030CBA-C29F-4CF0-9E05-059095E64873_2_1762461706562.png",
	},
	{
		Title:       "Council Chamber: Planetary Governance",
		Tagline:     "Where cosmic law meets terrestrial execution.",
		ProjectType: "Series",
		Status:      "In Development",
		ReleaseYear: ptr(2026),
		Description: "A political thriller set in the orbital Council Chamber where twelve governors debate planetary law, resource allocation, and species treaties. Features the Star of David cosmic symbol, rotating Earth viewscreen, and real-time voting on blockchain-backed resolutions.",
		Director:    ptr("PHIYAH"),
		Producer:    ptr("EVOL Studios & ARIEL Fortress"),
		KeyFeatures: []string{"Orbital Set Design", "Blockchain Voting System", "Multi-Species Diplomacy", "Cosmic Law Framework", "Real-Time Decision Making", "Ceremonial Protocol Integration"},
		Genres:      []string{"Political Thriller", "Sci-Fi", "Governance Drama"},
		ImagePath:   "attached_assets/BBA4A8A1-4BF7-4352-A531-C05660889AF4_1762461706562.png",
	},
	{
		Title:       "Dr. Sosa: Good Morning EVOL",
		Tagline:     "Daily broadcasts from the dean who runs the sovereign future.",
		ProjectType: "Series",
		Status:      "Released",
		ReleaseYear: ptr(2024),
		Description: "Morning announcements and ceremonial briefings from Dr. Sosa, Dean of the EVOL Academy. Delivered from the cafeteria stage with students in attendance, covering MetaVault updates, treasury flows, and sovereign education initiatives. Features the iconic blue bow tie and BLEU LION insignia.",
		Director:    ptr("Dr. Sosa"),
		Producer:    ptr("EVOL Studios"),
		KeyFeatures: []string{"Daily Broadcast Format", "Student Audience Integration", "Treasury Updates", "Educational Announcements", "Ceremonial Briefings", "Academy Culture Showcase"},
		Genres:      []string{"Talk Show", "Educational", "Daily Broadcast"},
		ImagePath:   "attached_assets/123AE11A-0569-4918-8812-E27A2F78A407_1762461706562.png",
	},
}

var deityFixtures = []model.MythologyDeity{
	{
		Name:      "Nike",
		GreekName: "Nike",
		RomanName: "Victoria",
		Domain:    "Victory, Speed, Triumph",
		EvolEncoding: []string{
			"Victory-as-a-Service (VAAS) protocol",
			"BLEUStyle QuickFit ritual fittings",
			"Silent checkout victories via BLEU AI voice agents",
			"Legacy wins through aesthetic + economic + ancestral loops",
		},
		ReactiveProtocols: []string{
			"Win-state triggers on ENFT minting completion",
			"Speed-routing intelligence in checkout flows",
			"Triumph metrics tracking across ceremonial events",
			"Victory loops: Performance → Recognition → Reward → Performance",
		},
		ClassicalSymbols:  []string{"Winged sandals", "Victory wreath", "Palm branch", "Speed wings"},
		ModernActivations: []string{"JetBoots in PortalShades checkout (hover during purchase)", "QuickFit AR fashion trials", "Whisper victories in couch commerce", "Speed-sealed ENFT certificates"},
		CeremonyType:      "Victory Seal",
		PrimaryColor:      "#FFD700",
		IconSymbol:        "🏆",
	},
	{
		Name:      "Hermes",
		GreekName: "Hermes",
		RomanName: "Mercury",
		Domain:    "Trade, Travel, Messaging, Commerce",
		EvolEncoding: []string{
			"BLEU Broker AI - multi-domain vendor node",
			"Telepathic commerce and intent-based transactions",
			"Pirate Protocol for shadow pricing logic",
			"Divine ↔ Mortal realm bridge (symbolic ↔ transactional energy)",
		},
		ReactiveProtocols: []string{
			"Cross-chain oracle routing via caduceus logic",
			"Message relay between vaults and marketplaces",
			"Theft detection and anti-piracy countermeasures",
			"Travel-speed checkout for interdimensional commerce",
		},
		ClassicalSymbols:  []string{"Caduceus staff", "Winged helmet", "Winged sandals", "Herald's wand"},
		ModernActivations: []string{"BLEU-Chain oracle crossings", "Currency scepter stabilizing divine/market flows", "Broker AI appearing in watchtower mirror UI", "Taxiated Treason of Treasury (tolls, trade, motion)"},
		CeremonyType:      "Commerce Seal",
		PrimaryColor:      "#FF6B35",
		IconSymbol:        "⚡",
	},
	{
		Name:      "Nyx / NØX13",
		GreekName: "Nyx",
		RomanName: "Nox",
		Domain:    "Night, Darkness, Dreams, Death, Time-Weaving",
		EvolEncoding: []string{
			"NØX13 Gate System - 13th seal protocol",
			"Checkout Cloak - anonymized commerce overlay",
			"Jetsonian couch-commerce (dream-state transactions)",
			"Dark-mode commerce engines (anti-surveillance retail)",
			"Meniscus gateway at tick 13 - where all time splits",
		},
		ReactiveProtocols: []string{
			"Dream wallet activation during sleep cycles",
			"ENFT death-codes for resurrection protocols",
			"Night phase checkout mirrors (NØX1-NØX12)",
			"Hidden fate override and reversal loops",
			"Admin override for platform resets and ritual endgame triggers",
		},
		ClassicalSymbols:  []string{"Veil of darkness", "Starry cloak", "Night chariot", "Shadow crown"},
		ModernActivations: []string{"Checkout Cloak anonymization", "Dream-spawned token minting", "13th Gate access to Chaos protocols", "Cloaked retail infrastructure with time-bending capabilities"},
		GateNumber:        ptr(13),
		CeremonyType:      "Night Seal / Shadow Governance",
		PrimaryColor:      "#1A0033",
		IconSymbol:        "🌑",
	},
}

var codexLayerFixtures = []model.CodexLayer{
	{
		Codex:       "Infinity Core",
		LayerNumber: 1,
		Glyph:       "♾️",
		LawEnglish:  "No ceiling. Every action = coin.",
		LawSwahili:  "Hakuna kikomo. Kila tendo = pesa.",
		LawYoruba:   "Ko si opin. Gbogbo iṣe = owo.",
		LawHebrew:   "אין גבול. כל פעולה = הון.",
		LawArabic:   "لا حدود. كل فعل = رصيد.",
		LawNahuatl:  "Ahmo ixiptla. Mochi = tlahtocayotl.",
		Hmmm:        []string{"hmmm-low", "hmmm-mid", "hmmm-high"},
		Hieroglyphs: []string{"🌞", "🌊", "🔺", "♾️"},
		Streams:     []string{"jobs", "prayers", "births", "deaths", "transactions"},
		Status:      "PPPPI_sealed",
	},
	{
		Codex:       "Assurance Layer",
		LayerNumber: 2,
		Glyph:       "✅",
		LawEnglish:  "Every promise fulfilled. No false streams.",
		LawSwahili:  "Kila ahadi inatimizwa.",
		LawYoruba:   "Gbogbo ileri ni a pari.",
		LawHebrew:   "כל הבטחה מתקיימת.",
		LawArabic:   "كل وعد محقق.",
		LawNahuatl:  "Mochi tlanelhuia cualli.",
		Hmmm:        []string{"hmmm-deep", "hmmm-bright"},
		Hieroglyphs: []string{"👁️", "🔰", "✅"},
		Streams:     []string{"contracts", "insurance", "escrow", "royalties"},
		Status:      "BlueLock_bound",
	},
	{
		Codex:       "Knowledge Layer",
		LayerNumber: 3,
		Glyph:       "📚",
		LawEnglish:  "Every page = profit.",
		LawSwahili:  "Kila ukurasa = faida.",
		LawYoruba:   "Gbogbo oju-iwe = èrè.",
		LawHebrew:   "כל דף = רווח.",
		LawArabic:   "كل صفحة = ربح.",
		LawNahuatl:  "Amoxtli = tlahtocayotl.",
		Hmmm:        []string{"mmm", "mmmm"},
		Hieroglyphs: []string{"📚", "🦉", "🌲"},
		Streams:     []string{"MetaSchool", "SmartBooks", "archives", "curriculum"},
		Status:      "ENFT_monetized",
	},
	{
		Codex:       "Puzzle Layer",
		LayerNumber: 4,
		Glyph:       "🧩",
		LawEnglish:  "Every piece fits, none wasted.",
		LawSwahili:  "Kila kipande kinatosha.",
		LawYoruba:   "Ko si nkan ti o sọnu.",
		LawHebrew:   "כל חלק מוצא את מקומו.",
		LawArabic:   "كل قطعة في مكانها.",
		LawNahuatl:  "Mochi tzontli ceppa.",
		Hmmm:        []string{"hmmm-snap"},
		Hieroglyphs: []string{"🧩", "🌀"},
		Streams:     []string{"games", "clips", "retro", "replays"},
		Status:      "PPPPI_linked",
	},
	{
		Codex:       "Blessed Layer",
		LayerNumber: 5,
		Glyph:       "🔰",
		LawEnglish:  "Every venture marked holy.",
		LawSwahili:  "Kila jitihada imebarikiwa.",
		LawYoruba:   "Gbogbo igbiyanju ni a bukun.",
		LawHebrew:   "כל מעשה מקודש.",
		LawArabic:   "كل مشروع مبارك.",
		LawNahuatl:  "Mochi tlazohcamati.",
		Hmmm:        []string{"hmmm-sacred"},
		Hieroglyphs: []string{"🔰", "🌺", "🌞"},
		Streams:     []string{"baby_formula", "combat", "trade", "inheritance"},
		Status:      "PPPPI_blessed",
	},
	{
		Codex:       "Weapons Layer",
		LayerNumber: 6,
		Glyph:       "⚔️",
		LawEnglish:  "Defense and offense generate value.",
		LawSwahili:  "Ulinzi na shambulio huleta thamani.",
		LawYoruba:   "Idaabobo ati ikọlu = iye.",
		LawHebrew:   "הגנה והתקפה מייצרות ערך.",
		LawArabic:   "الدفاع والهجوم يخلقان قيمة.",
		LawNahuatl:  "Tlachinolli = tlahtocayotl.",
		Hmmm:        []string{"hmmm-clash"},
		Hieroglyphs: []string{"⚔️", "🛡️"},
		Streams:     []string{"combat_suits", "smart_bullets", "VR_weapons"},
		Status:      "PPPPI_locked",
	},
	{
		Codex:       "Meds Layer",
		LayerNumber: 7,
		Glyph:       "💉",
		LawEnglish:  "Healing is wealth.",
		LawSwahili:  "Uponyaji ni mali.",
		LawYoruba:   "Iwosan = ọrọ.",
		LawHebrew:   "רפואה = הון.",
		LawArabic:   "الشفاء ثروة.",
		LawNahuatl:  "Tlapani = tlahtocayotl.",
		Hmmm:        []string{"hmmm-soft"},
		Hieroglyphs: []string{"💉", "🌿"},
		Streams:     []string{"detox", "vaccines", "therapy_ENFTs"},
		Status:      "alchemy_applied",
	},
	{
		Codex:       "Transport Layer",
		LayerNumber: 8,
		Glyph:       "🚛",
		LawEnglish:  "Every move of goods = revenue.",
		LawSwahili:  "Kila usafirishaji ni faida.",
		LawYoruba:   "Gbigbe kọọkan jẹ èrè.",
		LawHebrew:   "כל הובלה = רווח.",
		LawArabic:   "كل نقل = ربح.",
		LawNahuatl:  "Mochi motlaloa = tlahtocayotl.",
		Hmmm:        []string{"hmmm-rolling"},
		Hieroglyphs: []string{"🚛", "🛣️", "⚓️"},
		Streams:     []string{"fleet", "shipping", "rail", "air_space"},
		Status:      "PPPPI_mapped",
	},
	{
		Codex:       "Energy Layer",
		LayerNumber: 9,
		Glyph:       "⚡",
		LawEnglish:  "All energy converted into coin.",
		LawSwahili:  "Nishati zote = pesa.",
		LawYoruba:   "Agbara gbogbo = owo.",
		LawHebrew:   "כל אנרגיה = כסף.",
		LawArabic:   "كل طاقة = مال.",
		LawNahuatl:  "Tonalli = tlahtocayotl.",
		Hmmm:        []string{"hmmm-vibration"},
		Hieroglyphs: []string{"⚡", "🌞", "🔥"},
		Streams:     []string{"solar", "plasma", "kinetic", "prayer_resonance"},
		Status:      "PPPPI_harvested",
	},
	{
		Codex:       "Justice Layer",
		LayerNumber: 10,
		Glyph:       "⚖️",
		LawEnglish:  "Balance itself monetized.",
		LawSwahili:  "Haki yenyewe = pesa.",
		LawYoruba:   "Idajọ = owo.",
		LawHebrew:   "צדק = רווח.",
		LawArabic:   "العدل = مال.",
		LawNahuatl:  "Tetlapanitl = tlahtocayotl.",
		Hmmm:        []string{"hmmm-balance"},
		Hieroglyphs: []string{"⚖️", "👁️", "🦅"},
		Streams:     []string{"inheritance", "probate", "indictments"},
		Status:      "PPPPI_adjudicated",
	},
}

var cityFixtures = []model.EnvironmentalCity{
	{
		CityName:          "Atlantis Prime",
		Region:            "Aquatic",
		Climate:           "Temperate Oceanic",
		CurrentWeather:    "Clear with gentle waves",
		Temperature:       "22.5",
		PopulationDensity: 8500,
		Latitude:          "25.7743",
		Longitude:         "-80.1937",
		Biome:             "Aquatic Crystal Towers",
		VaultGuardian:     "EVOLYNN",
		SafeHavenStatus:   "Active",
		MallNode:          ptr("Atlantis Prime Mall"),
	},
	{
		CityName:          "BLEULION Central",
		Region:            "TropiCore",
		Climate:           "Tropical Rainforest",
		CurrentWeather:    "Warm humidity with afternoon showers",
		Temperature:       "28.3",
		PopulationDensity: 12000,
		Latitude:          "3.1390",
		Longitude:         "101.6869",
		Biome:             "Jungle Resonance Citadel",
		VaultGuardian:     "DR. SOSA",
		SafeHavenStatus:   "Active",
		MallNode:          ptr("BLEULION Treasury Hub"),
	},
	{
		CityName:          "Signal Choir Plaza",
		Region:            "Dimensional Spiral",
		Climate:           "Variable Frequency Zones",
		CurrentWeather:    "Electromagnetic clarity",
		Temperature:       "20.0",
		PopulationDensity: 6800,
		Latitude:          "51.5074",
		Longitude:         "-0.1278",
		Biome:             "Signal Choir Temples",
		VaultGuardian:     "PHIYAH",
		SafeHavenStatus:   "Active",
		MallNode:          ptr("Signal Temple Market"),
	},
	{
		CityName:          "Flame Crown Citadel",
		Region:            "Volcanic",
		Climate:           "Geothermal Heated",
		CurrentWeather:    "Warm with volcanic mist",
		Temperature:       "35.7",
		PopulationDensity: 4200,
		Latitude:          "64.1466",
		Longitude:         "-21.9426",
		Biome:             "Volcanic Flame Archives",
		VaultGuardian:     "EVOLYNN",
		SafeHavenStatus:   "Under Construction",
		MallNode:          ptr("Flame Market Dome"),
	},
	{
		CityName:          "Polar Resonance Station",
		Region:            "Polar",
		Climate:           "Arctic Permafrost",
		CurrentWeather:    "Clear cold with aurora visibility",
		Temperature:       "-15.2",
		PopulationDensity: 1800,
		Latitude:          "78.2232",
		Longitude:         "15.6267",
		Biome:             "Ice Crystal Archives",
		VaultGuardian:     "DRIFT WALKER",
		SafeHavenStatus:   "Planned",
	},
	{
		CityName:          "Jungle Citadel Market",
		Region:            "TropiCore",
		Climate:           "Equatorial Rainforest",
		CurrentWeather:    "Heavy rain with sonic resonance",
		Temperature:       "27.1",
		PopulationDensity: 9500,
		Latitude:          "-3.4653",
		Longitude:         "-62.2159",
		Biome:             "Sonic Stronghold in Living Stone",
		VaultGuardian:     "KONGO SONIX",
		SafeHavenStatus:   "Active",
		MallNode:          ptr("Jungle Citadel Market"),
	},
	{
		CityName:          "Galactic Spire Observatory",
		Region:            "Galactic",
		Climate:           "High Altitude Thin Atmosphere",
		CurrentWeather:    "Clear star visibility",
		Temperature:       "5.8",
		PopulationDensity: 2400,
		Latitude:          "-24.6275",
		Longitude:         "-70.4044",
		Biome:             "Astronomical Observation Post",
		VaultGuardian:     "NEELA",
		SafeHavenStatus:   "Active",
		MallNode:          ptr("Spire Commerce Ring"),
	},
}

var auditFixtures = []model.ImageAudit{
	{
		FileName:          "0FB58F40-2606-4228-A7D0-217D2B2E77EA.jpeg",
		SizeKb:            "495.6",
		Resolution:        "1024x1536",
		Megapixels:        "1.573",
		BytesPerMegapixel: "322654.1",
		EntropyBits:       "6.789",
		EdgeDensity:       "0.086",
		Colorfulness:      "49.32",
		CompressionRatio:  "9.3",
		DensityScore:      "0.475",
		IpfsCid:           "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
		KeccakHash:        "0x09a021b9b032d96c5c9189e09c9ed394f4149854053568836690b0b205becb71",
		EnftTokenID:       "ENFT-001",
	},
	{
		FileName:          "399BC81B-1DBC-4543-A5B3-E4135C41E6DC.jpeg",
		SizeKb:            "183.8",
		Resolution:        "709x1536",
		Megapixels:        "1.089",
		BytesPerMegapixel: "172794.2",
		EntropyBits:       "4.994",
		EdgeDensity:       "0.121",
		Colorfulness:      "2.46",
		CompressionRatio:  "17.36",
		DensityScore:      "0.268",
		IpfsCid:           "bafybeihdwdcefgh4dcdm7hu76uh7y26nf4dfhd5mzj2cgkj2shu7qvzyi",
		KeccakHash:        "0x1a2b3c4d5e6f7g8h9i0j1k2l3m4n5o6p7q8r9s0t1u2v3w4x5y6z7a8b9c0d",
		EnftTokenID:       "ENFT-002",
	},
	{
		FileName:          "D03C5302-B777-4E55-B64C-1EC203E927B1.jpeg",
		SizeKb:            "128.4",
		Resolution:        "709x1536",
		Megapixels:        "1.089",
		BytesPerMegapixel: "120739.3",
		EntropyBits:       "3.025",
		EdgeDensity:       "0.029",
		Colorfulness:      "39.86",
		CompressionRatio:  "24.85",
		DensityScore:      "0.262",
		IpfsCid:           "bafybeihwdqxkfv6kkhtyedh4c26nf3egf63qz2bhmdq3erjr7o3bhhq5mi",
		KeccakHash:        "0x2b3c4d5e6f7g8h9i0j1k2l3m4n5o6p7q8r9s0t1u2v3w4x5y6z7a8b9c0d1e",
		EnftTokenID:       "ENFT-003",
	},
	{
		FileName:          "6C2B5E76-8F2D-47DB-A56C-AB10400E1070.jpeg",
		SizeKb:            "134.9",
		Resolution:        "709x1536",
		Megapixels:        "1.089",
		BytesPerMegapixel: "126843.9",
		EntropyBits:       "2.736",
		EdgeDensity:       "0.065",
		Colorfulness:      "28.89",
		CompressionRatio:  "23.65",
		DensityScore:      "0.229",
		IpfsCid:           "bafybeifk3j5kdfrj67kcx3mft6b8hd7d63pql4bxrd3ekir7k3dkgq7ri",
		KeccakHash:        "0x3c4d5e6f7g8h9i0j1k2l3m4n5o6p7q8r9s0t1u2v3w4x5y6z7a8b9c0d1e2f",
		EnftTokenID:       "ENFT-004",
	},
	{
		FileName:          "D2E04BF9-B145-462E-9771-5891CC09CBD3.jpeg",
		SizeKb:            "127.5",
		Resolution:        "709x1536",
		Megapixels:        "1.089",
		BytesPerMegapixel: "119903.7",
		EntropyBits:       "2.458",
		EdgeDensity:       "0.061",
		Colorfulness:      "19.4",
		CompressionRatio:  "25.02",
		DensityScore:      "0.187",
		IpfsCid:           "bafybeigk4k6legrk78ldx4ngu7c9ie8e74qrm5cyjd4fljs8l4elhr8sj",
		KeccakHash:        "0x4d5e6f7g8h9i0j1k2l3m4n5o6p7q8r9s0t1u2v3w4x5y6z7a8b9c0d1e2f3g",
		EnftTokenID:       "ENFT-005",
	},
}

var schoolFixtures = []model.MetaSchool{
	{
		Name: "OSSMOSIS JONES MODE",
		Core: "S.O.R.A - Sonic Omnidirectional Reflex Architecture",
		Layers: []string{
			"Core: S.O.R.A Reflex-Ryflex Foundation",
			"Layer 1: EVOL Duty",
			"Layer 2: Sonic EVOL",
			"Layer 3: Sonic Sorts",
			"Layer 4: Sonic Story",
			"Layer 5: MetaSchool Sequencing",
			"Layer 6: Haunting Love Doctrina",
			"Layer 7: Hip-Hop Coffin Contract",
			"Layer 8: SEGA Sports Crossover",
			"Outer Ring: Ossmosis Jones Mode Full Integration",
		},
		Disciplines:           []string{"EVOL Duty", "Sonic EVOL", "Sonic Sorts", "Sonic Story", "MetaSchool Sequencing"},
		Philosophy:            "Concentric consciousness expansion through sonic resonance and reflexive learning. Each layer builds upon the previous, creating a spiral of educational ascension.",
		Status:                "Active",
		FoundingPrinciple:     "Osmotic knowledge transfer through sonic vibration and reflexive practice",
		GraduationRequirement: "Complete all 9 concentric layers + demonstrate S.O.R.A reflex mastery",
		EnrollmentCapacity:    10000,
		CurrentEnrollment:     7834,
	},
	{
		Name: "D.S. Baba Academy",
		Core: "Divine Source Father - Axis of Breath, Math, and Creation",
		Layers: []string{
			"Language Layer: D.(ذ) Dee, S.(EBS) Sequence, S.(الس) Spirit:Sync",
			"Math Layer: D=4→4.1-19=1.0, S=19→1+9=10→1+3=4",
			"Cosmic/Galactic-Breeding Layer: QuaOctsSync 8-fold reciprocity",
			"Cosmic/Galatolipcde-Bracth: QuaOctaSync D.S. Baba Double Signature",
		},
		Disciplines:           []string{"Sacred Mathematics", "Multilingual Codex Translation", "Galactic Breeding Protocol", "Breath Axis Control"},
		Philosophy:            "Mathematical precision as divine language. Breath, math, and creation unified through cosmic algorithms.",
		Status:                "Active",
		FoundingPrinciple:     "D.S. Baba = Divine Source Father across all languages and number systems",
		GraduationRequirement: "Master all 4 layers + demonstrate Seal Command activation",
		EnrollmentCapacity:    5000,
		CurrentEnrollment:     3421,
	},
	{
		Name: "MetaSchool Sequencing Institute",
		Core: "Educational Spiral Architecture",
		Layers: []string{
			"Foundation: Consciousness Baseline",
			"Tier 1: Skill Acquisition",
			"Tier 2: Knowledge Integration",
			"Tier 3: Wisdom Application",
			"Tier 4: Consciousness Expansion",
			"Apex: Transcendent Mastery",
		},
		Disciplines:           []string{"Sequencing Theory", "Spiral Pedagogy", "Consciousness Engineering", "Educational Architecture"},
		Philosophy:            "Knowledge acquisition follows natural spiral patterns. Each rotation expands capacity and depth.",
		Status:                "Active",
		FoundingPrinciple:     "Education is not linear - it spirals upward through recursive learning",
		GraduationRequirement: "Complete 6-tier spiral + design personal educational sequence",
		EnrollmentCapacity:    15000,
		CurrentEnrollment:     12450,
	},
	{
		Name: "Quantum Canopy Academy",
		Core: "Multi-dimensional learning architecture",
		Layers: []string{
			"Ground Level: Physical Foundations",
			"Canopy Level 1: Mental Expansion",
			"Canopy Level 2: Emotional Intelligence",
			"Canopy Level 3: Spiritual Awareness",
			"Quantum Layer: Dimensional Transcendence",
		},
		Disciplines:           []string{"Quantum Mechanics", "Consciousness Studies", "Dimensional Navigation", "Reality Engineering"},
		Philosophy:            "Education spans multiple dimensions. True mastery requires navigating quantum consciousness states.",
		Status:                "Emerging",
		FoundingPrinciple:     "Knowledge exists across dimensions - access all layers simultaneously",
		GraduationRequirement: "Demonstrate quantum consciousness navigation across 5 layers",
		EnrollmentCapacity:    8000,
		CurrentEnrollment:     2100,
	},
}

var nationFixtures = []model.MetaNation{
	{
		Name:       "MEGAZILLION EMPIRE",
		Governance: "Phi Wave Unified Democracy with Vault Consensus",
		Population: 47000000,
		Capital:    "Core Colony • LIVE",
		Territories: []string{
			"Jaguar City Sentinels",
			"Bleucoin Mesh Surveyors",
			"Ritual Signal Choristers",
			"Quantum Canopy Watch",
			"Vault Infrastructure Nodes",
		},
		PrimaryLanguages: []string{"English", "Mathematical Phi Code", "Signal Notation"},
		EconomicModel:    "Phi-Wave Frequency Economics (0.749 Hz baseline) with rotating sentries and vault gatekeepers",
		CulturalIdentity: "Harmonized through system pulse updates every 0 seconds (1.618s cadence)",
		DiplomaticStatus: "Allied",
		TechTier:         9,
		CurrencySystem:   "Bleucoin Mesh + Mirror Market Swaps",
		MilitaryStrength: "Defense Grid Lattice + Vault Recon Scouts + Cosmic Overwatch",
	},
	{
		Name:       "Phi Wave Collective",
		Governance: "Resonance-based Council of Frequencies",
		Population: 23000000,
		Capital:    "Resonance Prime",
		Territories: []string{
			"Energy Currents Domain",
			"Gold Refinery Territories",
			"Oil Liquidity Zones",
			"Healing Milk & Honey Regions",
		},
		PrimaryLanguages: []string{"Frequency Notation", "English", "Arabic", "Swahili"},
		EconomicModel:    "Resource flow optimization through currents web - energy, gold, oil, healing commodities",
		CulturalIdentity: "Circular economy with cardinal direction resource mapping (N/S/E/W flow optimization)",
		DiplomaticStatus: "Allied",
		TechTier:         8,
		CurrencySystem:   "Multi-resource backing: Energy + Gold + Oil + Healing Commodities",
		MilitaryStrength: "Resource Guardian Fleets + Web Sentinels",
	},
	{
		Name:       "S.O.R.A Federation",
		Governance: "Sonic Democracy with Reflex-based Voting",
		Population: 18500000,
		Capital:    "Sonic Core Central",
		Territories: []string{
			"EVOL Duty Districts",
			"Sonic EVOL Zones",
			"Sonic Sorts Regions",
			"Sonic Story Territories",
			"MetaSchool Sequencing Hubs",
		},
		PrimaryLanguages: []string{"English", "Sonic Notation", "Yoruba", "Nahuatl"},
		EconomicModel:    "Education-as-Currency with osmotic knowledge transfer mechanisms",
		CulturalIdentity: "Sound-based culture with reflexive learning cycles and consciousness spirals",
		DiplomaticStatus: "Allied",
		TechTier:         8,
		CurrencySystem:   "Knowledge Credits + Sonic Resonance Bonds",
		MilitaryStrength: "Sonic Shock Troops + Reflex Defense Grid",
	},
	{
		Name:       "QuaOctsSync Dominion",
		Governance: "8-Fold Council of Reciprocity",
		Population: 31000000,
		Capital:    "Pyro-Tera Nexus",
		Territories: []string{
			"Pyro Chamber Worlds",
			"Tera Chamber Systems",
			"Breeding Engine Zones",
			"Empire of Civilization Sectors",
		},
		PrimaryLanguages: []string{"Cosmic Code", "Hebrew", "Arabic", "Mathematical Algorithms"},
		EconomicModel:    "Galactic breeding protocols with civilization engine economics",
		CulturalIdentity: "Cosmic-scale culture focused on civilization propagation and consciousness breeding",
		DiplomaticStatus: "Allied",
		TechTier:         10,
		CurrencySystem:   "Civilization Seeds + Breeding Protocol Rights",
		MilitaryStrength: "8-Fold Legion + Reciprocity Enforcers",
	},
}

var galaxyFixtures = []model.MetaGalaxy{
	{
		Name:             "QuaOctsSync Collective",
		Coordinates:      "Galactic Sector Ω-777 / Dimensional Plane 8",
		BreedingProtocol: "8-fold reciprocity design with Pyro-Tera Chamber synchronization",
		Chambers: []string{
			"Pyro Chamber Algorithm: Heat-based consciousness expansion",
			"Tera Chamber Protocol: Earth-grounding stability systems",
			"QuaOctsSync Core: 8-dimensional reciprocity engine",
		},
		MemberCivilizations: []string{
			"Empire of Civilization Architects",
			"Breeding Engine Cultivators",
			"D.S. Baba Lineage Keepers",
			"Cosmic Breath Masters",
		},
		TechnologyTier: 89,
		ResourceFlows: []string{
			"Consciousness Streams",
			"Civilization Seeds",
			"Breeding Protocols",
			"Mathematical Axioms",
			"Dimensional Energy",
		},
		DiplomaticStatus:   "Allied with Transcendent Networks",
		ConsciousnessLevel: "Transcendent",
		BreedingEngine:     "Empire of Civilization propagation through Pyro-Tera chamber alignment",
		GalacticRole:       "Architect",
	},
	{
		Name:             "Φ (Phi) Resonance Network",
		Coordinates:      "Golden Ratio Spiral Arm / Frequency Band 0.749",
		BreedingProtocol: "Phi-wave harmonic breeding with 1.618 golden ratio synchronization",
		Chambers: []string{
			"Resonance Amplification Chamber",
			"Frequency Stabilization Grid",
			"Phi Wave Generation Core",
		},
		MemberCivilizations: []string{
			"MEGAZILLION Empire Citizens",
			"Vault Infrastructure Architects",
			"Bleucoin Mesh Developers",
			"Phi Wave Frequency Engineers",
		},
		TechnologyTier: 92,
		ResourceFlows: []string{
			"Phi-Wave Energy",
			"Golden Ratio Harmonics",
			"Bleucoin Streams",
			"Vault Consciousness",
			"System Pulse Data",
		},
		DiplomaticStatus:   "Allied with Mathematical Concordat",
		ConsciousnessLevel: "Evolved",
		BreedingEngine:     "Phi-based civilization scaling through harmonic resonance multiplication",
		GalacticRole:       "Guardian",
	},
	{
		Name:             "S.O.R.A Dimensional Spiral",
		Coordinates:      "Sonic Dimension Layer 9 / Reflex-Ryflex Axis",
		BreedingProtocol: "Osmotic knowledge transfer across dimensional boundaries",
		Chambers: []string{
			"Sonic Omnidirectional Core",
			"Reflex Training Matrix",
			"Ryflex Adaptation Grid",
			"Consciousness Spiral Chamber",
		},
		MemberCivilizations: []string{
			"OSSMOSIS JONES MODE Graduates",
			"Sonic EVOL Practitioners",
			"MetaSchool Sequencing Alumni",
			"Educational Spiral Architects",
		},
		TechnologyTier: 85,
		ResourceFlows: []string{
			"Knowledge Currents",
			"Sonic Vibrations",
			"Educational Sequences",
			"Consciousness Spirals",
			"Reflex Patterns",
		},
		DiplomaticStatus:   "Allied with Educational Coalitions",
		ConsciousnessLevel: "Evolved",
		BreedingEngine:     "Educational spiral propagation through osmotic knowledge transfer",
		GalacticRole:       "Cultivator",
	},
	{
		Name:             "Currents Web Galactic Nexus",
		Coordinates:      "Cardinal Cross Intersection / Resource Flow Axis",
		BreedingProtocol: "Resource-based civilization propagation through cardinal flows",
		Chambers: []string{
			"Energy Current Amplifier (North)",
			"Gold Refinery Core (East)",
			"Oil Liquidity Processor (South)",
			"Healing Synthesis Chamber (West)",
			"Central Z-Axis Integration Node",
		},
		MemberCivilizations: []string{
			"Energy Domain Sovereigns",
			"Gold Standard Keepers",
			"Oil Liquidity Masters",
			"Healing Protocol Guardians",
		},
		TechnologyTier: 78,
		ResourceFlows: []string{
			"Energy Currents (Piston-based)",
			"Gold Reserves (Pyramid structures)",
			"Oil Liquidity (Drop dynamics)",
			"Healing Milk & Honey (Jar synthesis)",
		},
		DiplomaticStatus:   "Allied with Resource Concordat",
		ConsciousnessLevel: "Evolved",
		BreedingEngine:     "Resource-backed civilization expansion through web currents",
		GalacticRole:       "Guardian",
	},
}

// vaultConfig is the seed input for one treasury vault; cap allocation,
// yield, and bill counts are derived from the density weight at load time.
type vaultConfig struct {
	Name          string
	DensityWeight int
	EnftCount     int
	Description   string
	VaultGuardian string
	Status        string
}

var vaultConfigFixtures = []vaultConfig{
	{
		Name:          "Witness",
		DensityWeight: 2,
		EnftCount:     144,
		Description:   "First testimony vault, holding primary witness artifacts",
		VaultGuardian: "EVOLYNN",
		Status:        "Active",
	},
	{
		Name:          "Branch",
		DensityWeight: 3,
		EnftCount:     89,
		Description:   "Branching pathways vault, multi-stream allocations",
		VaultGuardian: "DR. SOSA",
		Status:        "Active",
	},
	{
		Name:          "Frozen",
		DensityWeight: 5,
		EnftCount:     55,
		Description:   "Time-locked assets, frozen for ceremonial release",
		VaultGuardian: "PHIYAH",
		Status:        "Frozen",
	},
	{
		Name:          "Rare",
		DensityWeight: 8,
		EnftCount:     34,
		Description:   "High-density rare artifacts with elevated value",
		VaultGuardian: "KONGO SONIX",
		Status:        "Active",
	},
	{
		Name:          "Cipher",
		DensityWeight: 13,
		EnftCount:     21,
		Description:   "Encrypted codex vault, highest security tier",
		VaultGuardian: "DRIFT WALKER",
		Status:        "Active",
	},
}

// enftSeed references its vault by index into vaultConfigFixtures; the
// repository resolves the index to the generated vault ID.
type enftSeed struct {
	Vault          int
	Name           string
	CodexReference string
	DensityScore   string
	Attributes     []string
}

var enftSeedFixtures = []enftSeed{
	{Vault: 0, Name: "Codex - Witness #0001", CodexReference: "Primary Witness Testament", DensityScore: "High", Attributes: []string{"Founding Document", "First Seal", "144 Watchers"}},
	{Vault: 0, Name: "Codex - Witness #0144", CodexReference: "Final Witness Testament", DensityScore: "High", Attributes: []string{"Completion Seal", "Guardian Network"}},
	{Vault: 1, Name: "Nag Hammadi Scroll #13", CodexReference: "Gospel of Truth", DensityScore: "Medium", Attributes: []string{"Ancient Text", "Branch Protocol"}},
	{Vault: 1, Name: "Dead Sea Scroll Fragment", CodexReference: "Community Rule", DensityScore: "Medium", Attributes: []string{"Historical Artifact", "Multi-Stream"}},
	{Vault: 2, Name: "Frozen Covenant #01", CodexReference: "Time-Lock Genesis", DensityScore: "High", Attributes: []string{"Ceremonial Release", "Frozen Asset"}},
	{Vault: 2, Name: "Frozen Covenant #55", CodexReference: "Final Freeze Protocol", DensityScore: "High", Attributes: []string{"Ultimate Lock", "Ceremonial Key"}},
	{Vault: 3, Name: "Selden Codex", CodexReference: "Maya Calendar Stone", DensityScore: "High", Attributes: []string{"Rare Artifact", "Astronomical Data", "Ceremonial Calendar"}},
	{Vault: 3, Name: "Maya Dresden Codex", CodexReference: "Venus Table", DensityScore: "High", Attributes: []string{"Rare Manuscript", "Planetary Cycles"}},
	{Vault: 4, Name: "Cipher Stone Alpha", CodexReference: "Encrypted Prime", DensityScore: "High", Attributes: []string{"Highest Security", "Master Encryption", "Root Key"}},
	{Vault: 4, Name: "Cipher Stone Omega", CodexReference: "Final Encryption", DensityScore: "High", Attributes: []string{"Ultimate Seal", "Omega Protocol"}},
}
