package assessments

// Severity levels
const (
	LevelLow      = "low"
	LevelMild     = "mild"
	LevelModerate = "moderate"
	LevelSevere   = "severe"
)

// Grading methods
const (
	gradeByRawScore       = "raw"             // score <= band limit
	gradeByPercent        = "percent"         // score/maxScore*100 <= band limit
	gradeByPercentInverse = "percent_inverse" // score/maxScore*100 >= band limit (higher is better)
)

// Question is a single questionnaire item
type Question struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Type        string   `json:"type"` // "scale"
	ScaleMin    int      `json:"scale_min"`
	ScaleMax    int      `json:"scale_max"`
	ScaleLabels []string `json:"scale_labels,omitempty"`
}

// Assessment is a fixed questionnaire from the catalog
type Assessment struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Icon          string     `json:"icon"`
	EstimatedTime int        `json:"estimated_time"` // minutes
	Questions     []Question `json:"questions"`
	Disclaimer    string     `json:"disclaimer"`

	grading grading
}

// MaxScore is the sum of scaleMax over all questions
func (a Assessment) MaxScore() int {
	total := 0
	for _, q := range a.Questions {
		total += q.ScaleMax
	}
	return total
}

// grading maps a total score onto a severity band
type grading struct {
	method string
	bands  []band
}

// band describes one severity tier and its outcome text.
// Limit интерпретируется согласно методу; у последней band лимита нет (catch-all).
type band struct {
	Limit           float64
	Level           string
	Title           string
	Description     string
	Recommendations []string
	Resources       []string
}

// grade resolves the band for a score. The last band always matches.
func (g grading) grade(score, maxScore int) band {
	pct := 0.0
	if maxScore > 0 {
		pct = float64(score) / float64(maxScore) * 100
	}

	for _, b := range g.bands[:len(g.bands)-1] {
		switch g.method {
		case gradeByRawScore:
			if float64(score) <= b.Limit {
				return b
			}
		case gradeByPercent:
			if pct <= b.Limit {
				return b
			}
		case gradeByPercentInverse:
			if pct >= b.Limit {
				return b
			}
		}
	}
	return g.bands[len(g.bands)-1]
}

var frequencyLabels = []string{"Not at all", "Several days", "More than half the days", "Nearly every day"}
var monthlyLabels = []string{"Never", "Almost never", "Sometimes", "Fairly often", "Very often"}
var oftenLabels = []string{"Never", "Rarely", "Sometimes", "Often", "Always"}

// GAD-7 inspired anxiety questionnaire
var anxietyQuestions = []Question{
	{ID: "anxiety-1", Text: "Over the last 2 weeks, how often have you been bothered by feeling nervous, anxious, or on edge?", Type: "scale", ScaleMin: 0, ScaleMax: 3, ScaleLabels: frequencyLabels},
	{ID: "anxiety-2", Text: "Over the last 2 weeks, how often have you been bothered by not being able to stop or control worrying?", Type: "scale", ScaleMin: 0, ScaleMax: 3, ScaleLabels: frequencyLabels},
	{ID: "anxiety-3", Text: "Over the last 2 weeks, how often have you been bothered by worrying too much about different things?", Type: "scale", ScaleMin: 0, ScaleMax: 3, ScaleLabels: frequencyLabels},
	{ID: "anxiety-4", Text: "Over the last 2 weeks, how often have you been bothered by trouble relaxing?", Type: "scale", ScaleMin: 0, ScaleMax: 3, ScaleLabels: frequencyLabels},
	{ID: "anxiety-5", Text: "Over the last 2 weeks, how often have you been bothered by being so restless that it's hard to sit still?", Type: "scale", ScaleMin: 0, ScaleMax: 3, ScaleLabels: frequencyLabels},
	{ID: "anxiety-6", Text: "Over the last 2 weeks, how often have you been bothered by becoming easily annoyed or irritable?", Type: "scale", ScaleMin: 0, ScaleMax: 3, ScaleLabels: frequencyLabels},
	{ID: "anxiety-7", Text: "Over the last 2 weeks, how often have you been bothered by feeling afraid as if something awful might happen?", Type: "scale", ScaleMin: 0, ScaleMax: 3, ScaleLabels: frequencyLabels},
}

// PHQ-9 inspired depression questionnaire
var depressionQuestions = []Question{
	{ID: "depression-1", Text: "Over the last 2 weeks, how often have you been bothered by little interest or pleasure in doing things?", Type: "scale", ScaleMin: 0, ScaleMax: 3, ScaleLabels: frequencyLabels},
	{ID: "depression-2", Text: "Over the last 2 weeks, how often have you been bothered by feeling down, depressed, or hopeless?", Type: "scale", ScaleMin: 0, ScaleMax: 3, ScaleLabels: frequencyLabels},
	{ID: "depression-3", Text: "Over the last 2 weeks, how often have you been bothered by trouble falling or staying asleep, or sleeping too much?", Type: "scale", ScaleMin: 0, ScaleMax: 3, ScaleLabels: frequencyLabels},
	{ID: "depression-4", Text: "Over the last 2 weeks, how often have you been bothered by feeling tired or having little energy?", Type: "scale", ScaleMin: 0, ScaleMax: 3, ScaleLabels: frequencyLabels},
	{ID: "depression-5", Text: "Over the last 2 weeks, how often have you been bothered by poor appetite or overeating?", Type: "scale", ScaleMin: 0, ScaleMax: 3, ScaleLabels: frequencyLabels},
	{ID: "depression-6", Text: "Over the last 2 weeks, how often have you been bothered by feeling bad about yourself or that you are a failure or have let yourself or your family down?", Type: "scale", ScaleMin: 0, ScaleMax: 3, ScaleLabels: frequencyLabels},
	{ID: "depression-7", Text: "Over the last 2 weeks, how often have you been bothered by trouble concentrating on things, such as reading or watching television?", Type: "scale", ScaleMin: 0, ScaleMax: 3, ScaleLabels: frequencyLabels},
}

// Perceived Stress Scale inspired questionnaire
var stressQuestions = []Question{
	{ID: "stress-1", Text: "In the last month, how often have you been upset because of something that happened unexpectedly?", Type: "scale", ScaleMin: 0, ScaleMax: 4, ScaleLabels: monthlyLabels},
	{ID: "stress-2", Text: "In the last month, how often have you felt that you were unable to control the important things in your life?", Type: "scale", ScaleMin: 0, ScaleMax: 4, ScaleLabels: monthlyLabels},
	{ID: "stress-3", Text: "In the last month, how often have you felt nervous and stressed?", Type: "scale", ScaleMin: 0, ScaleMax: 4, ScaleLabels: monthlyLabels},
	{ID: "stress-4", Text: "In the last month, how often have you felt confident about your ability to handle your personal problems?", Type: "scale", ScaleMin: 0, ScaleMax: 4, ScaleLabels: monthlyLabels},
	{ID: "stress-5", Text: "In the last month, how often have you felt that things were going your way?", Type: "scale", ScaleMin: 0, ScaleMax: 4, ScaleLabels: monthlyLabels},
	{ID: "stress-6", Text: "In the last month, how often have you found that you could not cope with all the things that you had to do?", Type: "scale", ScaleMin: 0, ScaleMax: 4, ScaleLabels: monthlyLabels},
}

// Subjective well-being questionnaire
var wellbeingQuestions = []Question{
	{ID: "wellbeing-1", Text: "How satisfied are you with your life as a whole these days?", Type: "scale", ScaleMin: 0, ScaleMax: 10, ScaleLabels: []string{
		"Not at all satisfied", "", "", "", "", "Moderately satisfied", "", "", "", "", "Completely satisfied",
	}},
	{ID: "wellbeing-2", Text: "How often do you feel happy?", Type: "scale", ScaleMin: 0, ScaleMax: 4, ScaleLabels: oftenLabels},
	{ID: "wellbeing-3", Text: "How often do you feel that your life has meaning and purpose?", Type: "scale", ScaleMin: 0, ScaleMax: 4, ScaleLabels: oftenLabels},
	{ID: "wellbeing-4", Text: "How often do you feel connected to others?", Type: "scale", ScaleMin: 0, ScaleMax: 4, ScaleLabels: oftenLabels},
	{ID: "wellbeing-5", Text: "How often do you feel optimistic about your future?", Type: "scale", ScaleMin: 0, ScaleMax: 4, ScaleLabels: oftenLabels},
}

// Catalog is the fixed set of questionnaires, in display order
var Catalog = []Assessment{
	{
		ID:            "anxiety",
		Title:         "Anxiety Assessment",
		Description:   "Evaluate your anxiety levels and get personalized recommendations for managing anxious feelings.",
		Icon:          "🌊",
		EstimatedTime: 5,
		Questions:     anxietyQuestions,
		Disclaimer:    "This assessment is based on the GAD-7 scale and is for educational purposes only. It is not a substitute for professional medical advice, diagnosis, or treatment.",
		grading: grading{
			method: gradeByRawScore,
			bands: []band{
				{
					Limit: 4, Level: LevelLow, Title: "Minimal Anxiety",
					Description: "Your responses suggest minimal anxiety symptoms. You're managing stress well!",
					Recommendations: []string{
						"Continue your current stress management practices",
						"Maintain regular exercise and healthy sleep habits",
						"Practice mindfulness or meditation to prevent future anxiety",
						"Stay connected with supportive friends and family",
					},
					Resources: []string{"Mindfulness apps", "Regular exercise routine", "Stress prevention techniques"},
				},
				{
					Limit: 9, Level: LevelMild, Title: "Mild Anxiety",
					Description: "You're experiencing some anxiety symptoms that may benefit from attention and self-care.",
					Recommendations: []string{
						"Practice deep breathing exercises daily",
						"Try progressive muscle relaxation techniques",
						"Limit caffeine and alcohol consumption",
						"Establish a regular sleep schedule",
						"Consider talking to a counselor if symptoms persist",
					},
					Resources: []string{"Breathing exercises", "Relaxation techniques", "Sleep hygiene tips", "Campus counseling services"},
				},
				{
					Limit: 14, Level: LevelModerate, Title: "Moderate Anxiety",
					Description: "Your anxiety levels are elevated and may be impacting your daily life. Professional support could be helpful.",
					Recommendations: []string{
						"Consider speaking with a mental health professional",
						"Practice anxiety management techniques daily",
						"Join a support group or anxiety management workshop",
						"Limit exposure to anxiety triggers when possible",
						"Focus on self-care and stress reduction",
					},
					Resources: []string{"Professional counseling", "Anxiety support groups", "Stress management workshops", "Mental health apps"},
				},
				{
					Level: LevelSevere, Title: "Severe Anxiety",
					Description: "Your responses indicate significant anxiety that may require professional attention. Please consider reaching out for support.",
					Recommendations: []string{
						"Seek professional help from a mental health provider",
						"Contact your campus counseling center",
						"Consider medication evaluation if recommended by a professional",
						"Build a strong support network",
						"Practice crisis management techniques",
					},
					Resources: []string{"Emergency mental health services", "Campus counseling center", "Professional therapy", "Crisis hotlines"},
				},
			},
		},
	},
	{
		ID:            "depression",
		Title:         "Mood Assessment",
		Description:   "Understand your mood patterns and discover strategies for improving your emotional well-being.",
		Icon:          "🌱",
		EstimatedTime: 5,
		Questions:     depressionQuestions,
		Disclaimer:    "This assessment is based on the PHQ-9 scale and is for educational purposes only. It is not a substitute for professional medical advice, diagnosis, or treatment.",
		grading: grading{
			method: gradeByRawScore,
			bands: []band{
				{
					Limit: 4, Level: LevelLow, Title: "Minimal Depression",
					Description: "Your mood appears to be stable with minimal depressive symptoms.",
					Recommendations: []string{
						"Maintain your current positive habits",
						"Stay socially connected",
						"Continue regular physical activity",
						"Practice gratitude and positive thinking",
					},
					Resources: []string{"Social activities", "Exercise programs", "Gratitude practices", "Positive psychology resources"},
				},
				{
					Limit: 9, Level: LevelMild, Title: "Mild Depression",
					Description: "You may be experiencing some depressive symptoms that could benefit from attention.",
					Recommendations: []string{
						"Increase physical activity and outdoor time",
						"Maintain social connections and seek support",
						"Practice self-care and stress management",
						"Consider talking to a counselor",
						"Focus on sleep hygiene and nutrition",
					},
					Resources: []string{"Exercise programs", "Social support groups", "Self-care guides", "Campus counseling"},
				},
				{
					Limit: 14, Level: LevelModerate, Title: "Moderate Depression",
					Description: "Your responses suggest moderate depressive symptoms that may benefit from professional support.",
					Recommendations: []string{
						"Seek professional counseling or therapy",
						"Consider joining a support group",
						"Maintain daily routines and structure",
						"Focus on basic self-care needs",
						"Stay connected with trusted friends or family",
					},
					Resources: []string{"Professional therapy", "Depression support groups", "Mental health services", "Crisis support"},
				},
				{
					Level: LevelSevere, Title: "Severe Depression",
					Description: "Your responses indicate significant depressive symptoms. Professional help is strongly recommended.",
					Recommendations: []string{
						"Seek immediate professional help",
						"Contact your campus counseling center",
						"Consider medication evaluation",
						"Build a crisis support plan",
						"Reach out to trusted friends, family, or professionals",
					},
					Resources: []string{"Emergency mental health services", "Professional therapy", "Crisis hotlines", "Campus mental health center"},
				},
			},
		},
	},
	{
		ID:            "stress",
		Title:         "Stress Assessment",
		Description:   "Measure your stress levels and learn effective coping strategies for academic and life pressures.",
		Icon:          "⚡",
		EstimatedTime: 4,
		Questions:     stressQuestions,
		Disclaimer:    "This assessment is based on the Perceived Stress Scale and is for educational purposes only. It is not a substitute for professional medical advice, diagnosis, or treatment.",
		grading: grading{
			method: gradeByPercent,
			bands: []band{
				{
					Limit: 25, Level: LevelLow, Title: "Low Stress",
					Description: "You're managing stress well and have good coping mechanisms in place.",
					Recommendations: []string{
						"Continue your current stress management practices",
						"Maintain work-life balance",
						"Keep up healthy lifestyle habits",
						"Share your coping strategies with others",
					},
					Resources: []string{"Stress prevention techniques", "Wellness programs", "Healthy lifestyle guides"},
				},
				{
					Limit: 50, Level: LevelMild, Title: "Moderate Stress",
					Description: "You're experiencing some stress that could benefit from additional coping strategies.",
					Recommendations: []string{
						"Practice time management and organization",
						"Learn new stress reduction techniques",
						"Increase physical activity",
						"Consider stress management workshops",
					},
					Resources: []string{"Time management tools", "Stress reduction techniques", "Campus wellness programs"},
				},
				{
					Limit: 75, Level: LevelModerate, Title: "High Stress",
					Description: "Your stress levels are elevated and may be impacting your well-being and performance.",
					Recommendations: []string{
						"Prioritize stress management activities",
						"Consider counseling or stress management therapy",
						"Evaluate and reduce stressors where possible",
						"Build stronger support networks",
					},
					Resources: []string{"Stress management counseling", "Support groups", "Relaxation programs", "Mental health services"},
				},
				{
					Level: LevelSevere, Title: "Very High Stress",
					Description: "You're experiencing very high stress levels that require immediate attention and support.",
					Recommendations: []string{
						"Seek professional help for stress management",
						"Consider taking a break or reducing commitments",
						"Focus on basic self-care and stress relief",
						"Build a strong support system",
					},
					Resources: []string{"Professional counseling", "Crisis support", "Stress management programs", "Emergency mental health services"},
				},
			},
		},
	},
	{
		ID:            "wellbeing",
		Title:         "Well-being Assessment",
		Description:   "Explore your overall life satisfaction and discover ways to enhance your mental wellness.",
		Icon:          "✨",
		EstimatedTime: 3,
		Questions:     wellbeingQuestions,
		Disclaimer:    "This assessment measures subjective well-being and is for educational purposes only. It is not a substitute for professional medical advice, diagnosis, or treatment.",
		grading: grading{
			// Inverted polarity: high score means high well-being, low concern
			method: gradeByPercentInverse,
			bands: []band{
				{
					Limit: 80, Level: LevelLow, Title: "High Well-being",
					Description: "You're experiencing high levels of life satisfaction and positive mental health.",
					Recommendations: []string{
						"Continue your positive practices",
						"Share your well-being strategies with others",
						"Maintain your support systems",
						"Consider helping others improve their well-being",
					},
					Resources: []string{"Positive psychology resources", "Volunteer opportunities", "Wellness communities"},
				},
				{
					Limit: 60, Level: LevelMild, Title: "Moderate Well-being",
					Description: "Your well-being is generally positive with room for enhancement.",
					Recommendations: []string{
						"Focus on activities that bring you joy",
						"Strengthen social connections",
						"Explore new interests and hobbies",
						"Practice gratitude and mindfulness",
					},
					Resources: []string{"Happiness programs", "Social activities", "Mindfulness resources", "Hobby groups"},
				},
				{
					Limit: 40, Level: LevelModerate, Title: "Lower Well-being",
					Description: "Your well-being could benefit from focused attention and support.",
					Recommendations: []string{
						"Consider counseling to explore life satisfaction",
						"Focus on building meaningful relationships",
						"Explore activities that align with your values",
						"Practice self-compassion and self-care",
					},
					Resources: []string{"Life coaching", "Counseling services", "Support groups", "Values exploration workshops"},
				},
				{
					Level: LevelSevere, Title: "Low Well-being",
					Description: "Your responses suggest low life satisfaction that may benefit from professional support.",
					Recommendations: []string{
						"Consider professional counseling or therapy",
						"Focus on basic self-care and mental health",
						"Seek support from trusted friends or family",
						"Explore what gives your life meaning and purpose",
					},
					Resources: []string{"Professional therapy", "Mental health services", "Support groups", "Crisis counseling"},
				},
			},
		},
	},
}

// FindAssessment returns the assessment with the given id, or false
func FindAssessment(id string) (Assessment, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Assessment{}, false
}
