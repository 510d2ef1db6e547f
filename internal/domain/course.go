package domain

// Course is multi-module learning content generated for a topic and difficulty.
type Course struct {
	Title    string   `json:"courseTitle"`
	Overview string   `json:"courseOverview"`
	Modules  []Module `json:"modules"`
}

// Module is one ordered unit of a Course.
type Module struct {
	Title           string         `json:"moduleTitle"`
	Overview        string         `json:"moduleOverview"`
	KeyTopics       []string       `json:"keyTopics"`
	DetailedContent []ConceptBlock `json:"detailedContent"`
}

// ConceptBlock explains a single concept inside a module.
type ConceptBlock struct {
	Concept            string `json:"concept"`
	Explanation        string `json:"explanation"`
	Example            string `json:"example"`
	RealWorldRelevance string `json:"realWorldRelevance"`
}

// Top-level and per-module keys a generated course must carry.
var (
	RequiredCourseFields = []string{"courseTitle", "courseOverview", "modules"}
	RequiredModuleFields = []string{"moduleTitle", "moduleOverview", "keyTopics", "detailedContent"}
)
