package activity

// Placeholder replaced with the literal task title in every task template.
const Placeholder = "{title}"

type category struct {
	Name      string
	Keywords  []string
	Templates []string
}

// Categories are tried in order; the first one with a keyword contained in the
// lower-cased title wins. "train" is listed under both learning and movement,
// so learning takes it.
var categories = []category{
	{
		Name:     "writing",
		Keywords: []string{"write", "writing", "blog", "article", "story", "book", "chapter", "journal", "draft", "manuscript"},
		Templates: []string{
			`Set up your writing space and write the opening paragraph of "{title}"`,
			`Outline the main points for "{title}" - spend 10 minutes brainstorming key ideas`,
			`Write for 10 minutes on "{title}" - focus on getting thoughts down, not perfection`,
			`Review and edit the first draft of "{title}" for clarity and flow`,
			`Create a quick outline or structure for "{title}" in 10 minutes`,
		},
	},
	{
		Name:     "learning",
		Keywords: []string{"learn", "study", "practice", "skill", "course", "tutorial", "train", "master", "understand"},
		Templates: []string{
			`Spend 10 minutes learning the basics of "{title}"`,
			`Practice one fundamental aspect of "{title}" for 10 minutes`,
			`Watch a short tutorial or read an article about "{title}"`,
			`Take notes on the key concepts of "{title}" for 10 minutes`,
			`Review and practice the most challenging part of "{title}" for 10 minutes`,
		},
	},
	{
		Name:     "organizing",
		Keywords: []string{"organize", "clean", "declutter", "tidy", "sort", "arrange", "file", "categorize"},
		Templates: []string{
			`Spend 10 minutes organizing one area related to "{title}"`,
			`Sort through items for "{title}" - decide what to keep, donate, or discard`,
			`Create a system for organizing materials needed for "{title}"`,
			`Tidy up the space where you'll work on "{title}"`,
			`Categorize and arrange everything you need for "{title}" in 10 minutes`,
		},
	},
	{
		Name:     "movement",
		Keywords: []string{"exercise", "workout", "fitness", "run", "walk", "yoga", "stretch", "movement", "train"},
		Templates: []string{
			`Do 10 minutes of "{title}" - start with gentle movements`,
			`Prepare for "{title}" by setting out gear and planning your routine`,
			`Practice basic movements or stretches for "{title}"`,
			`Take a 10-minute walk while thinking about your "{title}" goals`,
			`Warm up and do the first 10 minutes of "{title}" routine`,
		},
	},
	{
		Name:     "planning",
		Keywords: []string{"plan", "schedule", "prepare", "research", "design", "strategy", "outline"},
		Templates: []string{
			`Research "{title}" for 10 minutes - gather initial information`,
			`Create a simple plan or timeline for "{title}"`,
			`List the first 3 steps you need to take for "{title}"`,
			`Spend 10 minutes preparing materials or resources for "{title}"`,
			`Design a basic strategy or approach for "{title}" in 10 minutes`,
		},
	},
	{
		Name:     "communication",
		Keywords: []string{"call", "contact", "email", "reach", "connect", "communicate", "message"},
		Templates: []string{
			`Draft the key points for your "{title}" conversation in 10 minutes`,
			`Prepare what you want to say for "{title}" - write down main points`,
			`Research the person or organization for "{title}" for 10 minutes`,
			`Set up your space and mindset for "{title}" call or meeting`,
			`Practice or rehearse what you'll say for "{title}" in 10 minutes`,
		},
	},
	{
		Name:     "creating",
		Keywords: []string{"create", "make", "build", "develop", "design", "craft", "produce"},
		Templates: []string{
			`Spend 10 minutes sketching or brainstorming ideas for "{title}"`,
			`Gather materials and set up your workspace for "{title}"`,
			`Create the first element or component of "{title}" in 10 minutes`,
			`Design a rough prototype or mockup for "{title}"`,
			`Make one small piece of "{title}" - focus on starting, not finishing`,
		},
	},
	{
		Name:     "reading",
		Keywords: []string{"read", "review", "analyze", "study", "examine", "explore"},
		Templates: []string{
			`Read for 10 minutes about "{title}" - focus on understanding basics`,
			`Review and take notes on key information about "{title}"`,
			`Analyze one aspect of "{title}" that you find most interesting`,
			`Explore different perspectives or approaches to "{title}" for 10 minutes`,
			`Study the most important element of "{title}" in depth`,
		},
	},
}

var defaultTemplates = []string{
	`Take the first small step toward "{title}" - just 10 minutes of focused action`,
	`Prepare or gather what you need to begin "{title}"`,
	`Spend 10 minutes thinking about and planning your approach to "{title}"`,
	`Start "{title}" with one simple, manageable action for 10 minutes`,
	`Break "{title}" into smaller pieces and work on the first one for 10 minutes`,
	`Set up your environment and mindset for success with "{title}"`,
}

var lowEnergyActivities = []string{
	"Take 10 minutes for gentle breathing and grounding yourself in the present moment",
	"Spend 10 minutes in quiet gratitude reflection, noticing small joys around you",
	"Use 10 minutes for gentle stretching or simply sitting with awareness of your body",
	"Take 10 minutes to tidy one small area while moving slowly and mindfully",
	"Dedicate 10 minutes to meditation or simply watching your breath",
	"Spend 10 minutes sitting by a window or outside, observing nature quietly",
	"Use 10 minutes for gentle self-compassion and soothing inner dialogue",
	"Take 10 minutes to rest and visualize a peaceful, safe space",
	"Spend 10 minutes doing something very gentle and creative - doodling, humming",
	"Use 10 minutes for a quiet, gentle connection with yourself through journaling",
}

var mediumEnergyActivities = []string{
	"Take 10 minutes for mindful breathing and gentle intention setting",
	"Spend 10 minutes journaling about what you're grateful for today",
	"Use 10 minutes to stretch your body and check in with how you feel",
	"Take 10 minutes to organize your space mindfully and with purpose",
	"Dedicate 10 minutes to sitting quietly and observing your thoughts",
	"Spend 10 minutes walking mindfully, either indoors or outside",
	"Use 10 minutes to practice self-compassion and kind inner dialogue",
	"Take 10 minutes to visualize your ideal self and how that feels",
	"Spend 10 minutes doing something creative just for the joy of it",
	"Use 10 minutes to connect with someone you care about",
}

var highEnergyActivities = []string{
	"Take 10 minutes for energizing breathwork and setting powerful intentions",
	"Spend 10 minutes writing down ambitious goals and excitement for the day",
	"Use 10 minutes for dynamic movement - stretching, dancing, or walking briskly",
	"Take 10 minutes to organize and optimize your space for peak productivity",
	"Dedicate 10 minutes to focused visualization of achieving your biggest dreams",
	"Spend 10 minutes on an energizing walk or outdoor movement",
	"Use 10 minutes for confident affirmations and self-empowerment practices",
	"Take 10 minutes to brainstorm creative solutions or new possibilities",
	"Spend 10 minutes on an energizing creative activity - sketching, writing, planning",
	"Use 10 minutes to reach out and inspire or connect meaningfully with someone",
}
