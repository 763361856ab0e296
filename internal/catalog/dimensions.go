package catalog

// Dimension keys, used in stored score maps and display.
const (
	KeySomatization       = "somatization"
	KeyObsessiveComp      = "obsessive_compulsive"
	KeyInterpersonalSens  = "interpersonal_sensitivity"
	KeyDepression         = "depression"
	KeyAnxiety            = "anxiety"
	KeyHostility          = "hostility"
	KeyPhobicAnxiety      = "phobic_anxiety"
	KeyParanoidIdeation   = "paranoid_ideation"
	KeyPsychoticism       = "psychoticism"
)

// seedDimensions defines the nine symptom dimensions and their item
// lists. The lists are disjoint and, together with seedAdditionalItems,
// cover all 90 items exactly once.
var seedDimensions = []Dimension{
	{
		Key:   KeySomatization,
		Name:  "Somatization",
		Items: []int{1, 4, 12, 27, 40, 42, 48, 49, 52, 53, 56, 58},
	},
	{
		Key:   KeyObsessiveComp,
		Name:  "Obsessive-Compulsive",
		Items: []int{3, 9, 10, 28, 38, 45, 46, 51, 55, 65},
	},
	{
		Key:   KeyInterpersonalSens,
		Name:  "Interpersonal Sensitivity",
		Items: []int{6, 21, 34, 36, 37, 41, 61, 69, 73},
	},
	{
		Key:   KeyDepression,
		Name:  "Depression",
		Items: []int{5, 14, 15, 20, 22, 26, 29, 30, 31, 32, 54, 71, 79},
	},
	{
		Key:   KeyAnxiety,
		Name:  "Anxiety",
		Items: []int{2, 17, 23, 33, 39, 57, 72, 78, 80, 86},
	},
	{
		Key:   KeyHostility,
		Name:  "Hostility",
		Items: []int{11, 24, 63, 67, 74, 81},
	},
	{
		Key:   KeyPhobicAnxiety,
		Name:  "Phobic Anxiety",
		Items: []int{13, 25, 47, 50, 70, 75, 82},
	},
	{
		Key:   KeyParanoidIdeation,
		Name:  "Paranoid Ideation",
		Items: []int{8, 18, 43, 68, 76, 83},
	},
	{
		Key:   KeyPsychoticism,
		Name:  "Psychoticism",
		Items: []int{7, 16, 35, 62, 77, 84, 85, 87, 88, 90},
	},
}

// seedAdditionalItems are the seven items (sleep, appetite, guilt,
// thoughts of death) outside every named dimension. They count toward
// the global indices only.
var seedAdditionalItems = []int{19, 44, 59, 60, 64, 66, 89}
