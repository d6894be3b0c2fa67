package pet

// Game constants
const (
	DefaultPetName  = "Tama"
	DefaultSaveFile = "tamagotchi_save.json"
	MaxStat         = 100
	MinStat         = 0

	// Starting stats for a fresh pet
	InitialHunger       = 80
	InitialEnergy       = 80
	InitialHappiness    = 80
	InitialIntelligence = 20

	// Decay per whole minute since the last update
	HungerDecayPerMinute    = 2
	EnergyDecayPerMinute    = 1
	HappinessDecayPerMinute = 1

	XPPerLevel = 20

	FeedHungerIncrease    = 25
	FeedHappinessIncrease = 5
	FeedXP                = 2
	MessyChance           = 0.3

	SleepEnergyIncrease = 40
	SleepXP             = 3

	PlayMinEnergy = 20

	StudyMinEnergy          = 15
	StudyIntelligenceGain   = 20
	StudyEnergyCost         = 15
	StudyXP                 = 6
	SmartIntelligenceThresh = 80

	CleanHappinessIncrease = 10
	CleanXP                = 2

	AmbientEventChance = 0.10
)

// Stage is the life phase derived from level.
type Stage string

const (
	StageBaby   Stage = "baby"
	StageTeen   Stage = "teen"
	StageAdult  Stage = "adult"
	StageMaster Stage = "master"
)

// Level thresholds for each stage
const (
	TeenLevel   = 3
	AdultLevel  = 6
	MasterLevel = 10
)

// Visual state overrides understood by the display
const (
	VisualSleeping = "sleeping"
	VisualEating   = "eating"
	VisualSick     = "sick"
)
