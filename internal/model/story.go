package model

// StoryChapter is one chapter of the story mode narrative. Chapters are
// served ordered by ChapterNumber.
type StoryChapter struct {
	ID                 string   `json:"id"`
	ChapterNumber      int      `json:"chapterNumber"`
	Title              string   `json:"title"`
	Subtitle           string   `json:"subtitle"`
	Narrative          string   `json:"narrative"`
	ImagePath          string   `json:"imagePath"`
	Category           string   `json:"category"`
	Unlocked           bool     `json:"unlocked"`
	CharactersFeatured []string `json:"charactersFeatured"`
}

// EvolversScene is one scene of the EVOLVERS Act I screenplay. Scenes are
// served ordered by SceneNumber.
type EvolversScene struct {
	ID              string   `json:"id"`
	Act             string   `json:"act"`
	SceneNumber     int      `json:"sceneNumber"`
	SceneTitle      string   `json:"sceneTitle"`
	Location        string   `json:"location"`
	SceneType       string   `json:"sceneType"`
	Character       *string  `json:"character"`
	Narration       *string  `json:"narration"`
	DialogueLines   []string `json:"dialogueLines"`
	VisualElements  []string `json:"visualElements"`
	RitualInterface *string  `json:"ritualInterface"`
}
