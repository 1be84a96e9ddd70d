package library

import "fmt"

// Category — тематическая подборка треков
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Track — трек из библиотеки эмбиент-звуков
type Track struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Artist          string `json:"artist"`
	DurationSeconds int    `json:"duration_seconds"`
	Duration        string `json:"duration"` // mm:ss, derived
	Category        string `json:"category"`
	Description     string `json:"description"`
	CoverImage      string `json:"cover_image"`

	// Ключ объекта в S3 (audio/<id>.mp3); в local режиме отдаётся AudioURL
	ObjectKey string `json:"-"`
	AudioURL  string `json:"-"`
}

// Categories is the fixed set of track categories, in display order
var Categories = []Category{
	{ID: "focus", Name: "Focus & Study", Description: "Enhance concentration and productivity", Icon: "🎯"},
	{ID: "relaxation", Name: "Relaxation", Description: "Unwind and release tension", Icon: "🌸"},
	{ID: "sleep", Name: "Sleep & Rest", Description: "Peaceful sounds for better sleep", Icon: "🌙"},
	{ID: "nature", Name: "Nature Sounds", Description: "Connect with the natural world", Icon: "🌿"},
	{ID: "meditation", Name: "Meditation", Description: "Guided and ambient meditation", Icon: "🧘"},
	{ID: "anxiety", Name: "Anxiety Relief", Description: "Calming sounds for stress reduction", Icon: "💙"},
}

// Tracks is the curated track catalog
var Tracks = []Track{
	// Focus & Study
	{ID: "focus-1", Title: "Deep Focus Flow", Artist: "Mindful Sounds", DurationSeconds: 1800, Category: "focus", Description: "Ambient tones designed to enhance concentration and mental clarity", CoverImage: "/covers/focus-1.jpg"},
	{ID: "focus-2", Title: "Study Session", Artist: "Calm Collective", DurationSeconds: 2700, Category: "focus", Description: "Gentle instrumental music perfect for studying and reading", CoverImage: "/covers/focus-2.jpg"},
	{ID: "focus-3", Title: "Productivity Boost", Artist: "Focus Lab", DurationSeconds: 3600, Category: "focus", Description: "Energizing yet calm sounds to maintain focus throughout work", CoverImage: "/covers/focus-3.jpg"},

	// Relaxation
	{ID: "relax-1", Title: "Evening Unwind", Artist: "Serenity Studio", DurationSeconds: 1200, Category: "relaxation", Description: "Soft melodies to help you transition from day to evening", CoverImage: "/covers/relax-1.jpg"},
	{ID: "relax-2", Title: "Stress Release", Artist: "Peaceful Mind", DurationSeconds: 1500, Category: "relaxation", Description: "Calming sounds designed to melt away tension and worry", CoverImage: "/covers/relax-2.jpg"},
	{ID: "relax-3", Title: "Inner Peace", Artist: "Tranquil Tones", DurationSeconds: 2100, Category: "relaxation", Description: "Gentle ambient music for deep relaxation and peace", CoverImage: "/covers/relax-3.jpg"},

	// Sleep & Rest
	{ID: "sleep-1", Title: "Dreamscape", Artist: "Night Sounds", DurationSeconds: 3600, Category: "sleep", Description: "Ethereal soundscapes to guide you into peaceful sleep", CoverImage: "/covers/sleep-1.jpg"},
	{ID: "sleep-2", Title: "Bedtime Stories", Artist: "Sleep Well", DurationSeconds: 2400, Category: "sleep", Description: "Gentle instrumental lullabies for restful sleep", CoverImage: "/covers/sleep-2.jpg"},

	// Nature Sounds
	{ID: "nature-1", Title: "Forest Rain", Artist: "Nature's Symphony", DurationSeconds: 1800, Category: "nature", Description: "Gentle rainfall in a peaceful forest setting", CoverImage: "/covers/nature-1.jpg"},
	{ID: "nature-2", Title: "Ocean Waves", Artist: "Coastal Calm", DurationSeconds: 2700, Category: "nature", Description: "Rhythmic ocean waves on a quiet beach", CoverImage: "/covers/nature-2.jpg"},
	{ID: "nature-3", Title: "Mountain Stream", Artist: "Alpine Sounds", DurationSeconds: 2100, Category: "nature", Description: "Babbling brook flowing through mountain meadows", CoverImage: "/covers/nature-3.jpg"},

	// Meditation
	{ID: "meditation-1", Title: "Mindful Breathing", Artist: "Meditation Guide", DurationSeconds: 900, Category: "meditation", Description: "Guided breathing exercise with gentle background tones", CoverImage: "/covers/meditation-1.jpg"},
	{ID: "meditation-2", Title: "Body Scan Relaxation", Artist: "Wellness Center", DurationSeconds: 1200, Category: "meditation", Description: "Progressive relaxation technique with calming music", CoverImage: "/covers/meditation-2.jpg"},

	// Anxiety Relief
	{ID: "anxiety-1", Title: "Calm Anxiety", Artist: "Healing Sounds", DurationSeconds: 1500, Category: "anxiety", Description: "Specially designed frequencies to reduce anxiety and promote calm", CoverImage: "/covers/anxiety-1.jpg"},
	{ID: "anxiety-2", Title: "Peaceful Mind", Artist: "Serenity Now", DurationSeconds: 1800, Category: "anxiety", Description: "Soothing melodies to quiet racing thoughts and worries", CoverImage: "/covers/anxiety-2.jpg"},
}

func init() {
	for i := range Tracks {
		Tracks[i].Duration = FormatDuration(Tracks[i].DurationSeconds)
		Tracks[i].ObjectKey = fmt.Sprintf("library/audio/%s.mp3", Tracks[i].ID)
		Tracks[i].AudioURL = "/placeholder.mp3"
	}
}

// FormatDuration renders seconds as m:ss
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FindCategory returns the category with the given id, or false
func FindCategory(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// FindTrack returns the track with the given id, or false
func FindTrack(id string) (Track, bool) {
	for _, t := range Tracks {
		if t.ID == id {
			return t, true
		}
	}
	return Track{}, false
}

// TracksByCategory returns all tracks in a category, in catalog order
func TracksByCategory(categoryID string) []Track {
	result := make([]Track, 0, len(Tracks))
	for _, t := range Tracks {
		if t.Category == categoryID {
			result = append(result, t)
		}
	}
	return result
}
