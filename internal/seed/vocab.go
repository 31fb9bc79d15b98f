package seed

// ActionTemplate is one entry of the agent action catalog.
type ActionTemplate struct {
	Name        string
	Description string
}

// Vocabulary holds the read-only word tables the generator samples from.
// The generator never mutates these slices.
type Vocabulary struct {
	FirstNames   []string
	LastNames    []string
	EmailDomains []string

	AgentPrefixes []string
	AgentDomains  []string
	AgentSuffixes []string

	DescriptionActions []string
	DescriptionTasks   []string

	LoremWords []string

	ActionCatalog []ActionTemplate
}

// DefaultVocabulary returns the built-in word tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		FirstNames:         firstNames,
		LastNames:          lastNames,
		EmailDomains:       emailDomains,
		AgentPrefixes:      agentPrefixes,
		AgentDomains:       agentDomains,
		AgentSuffixes:      agentSuffixes,
		DescriptionActions: descriptionActions,
		DescriptionTasks:   descriptionTasks,
		LoremWords:         loremWords,
		ActionCatalog:      actionCatalog,
	}
}

// ── Action catalog ──

var actionCatalog = []ActionTemplate{
	{"send_email", "Sends an email to specified recipient"},
	{"create_task", "Creates a task in project management tool"},
	{"search_web", "Searches the web for information"},
	{"generate_report", "Generates a report document"},
	{"schedule_meeting", "Schedules a calendar meeting"},
	{"send_slack_message", "Sends a message to a Slack channel"},
	{"create_calendar_event", "Creates a new calendar event"},
	{"upload_file", "Uploads a file to cloud storage"},
	{"create_ticket", "Creates a support ticket in helpdesk"},
	{"send_sms", "Sends an SMS to specified phone number"},
	{"update_crm", "Updates a record in the CRM system"},
	{"create_invoice", "Generates and sends an invoice"},
	{"post_to_social", "Posts content to social media"},
	{"translate_text", "Translates text to another language"},
	{"summarise_document", "Creates a summary of a document"},
	{"create_spreadsheet", "Creates a new spreadsheet with data"},
	{"send_notification", "Sends a push notification to user"},
	{"book_appointment", "Books an appointment in scheduling system"},
	{"run_database_query", "Executes a database query and returns results"},
	{"generate_image", "Generates an image using AI"},
}

// ── Agent naming ──

var agentPrefixes = []string{
	"Smart", "Quick", "Pro", "Super", "Ultra", "Mega", "Turbo", "Auto", "Easy", "Fast",
	"AI", "Digital", "Virtual", "Cloud", "Data", "Cyber", "Tech", "Code", "Logic", "Neural",
}

var agentSuffixes = []string{
	"Assistant", "Helper", "Buddy", "Bot", "Agent", "Wizard", "Genius", "Expert", "Pro", "Master",
	"Companion", "Advisor", "Guide", "Coach", "Partner", "Pilot", "Copilot", "Manager", "Analyst", "Writer",
}

var agentDomains = []string{
	"Research", "Code", "Email", "Task", "Data", "Meeting", "Document", "Support", "Social", "Project",
	"Sales", "Marketing", "Finance", "HR", "Legal", "Design", "Content", "Security", "DevOps", "Analytics",
}

var descriptionActions = []string{
	"Helps with", "Assists in", "Automates", "Streamlines", "Manages", "Handles",
	"Simplifies", "Optimises", "Coordinates", "Facilitates",
}

var descriptionTasks = []string{
	"daily tasks and workflows", "complex data analysis", "content creation and editing",
	"customer interactions", "project management", "research and summarisation",
	"scheduling and reminders", "code review and debugging", "report generation",
	"communication and collaboration", "document processing", "decision making",
}

// ── People ──

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Dorothy", "Paul", "Kimberly", "Andrew", "Emily", "Joshua", "Donna",
	"Kenneth", "Michelle", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa",
	"Timothy", "Deborah", "Ronald", "Stephanie", "Edward", "Rebecca", "Jason", "Sharon",
	"Jeffrey", "Laura", "Ryan", "Cynthia", "Jacob", "Kathleen", "Gary", "Amy",
	"Nicholas", "Angela", "Eric", "Shirley", "Jonathan", "Anna", "Stephen", "Brenda",
	"Larry", "Pamela", "Justin", "Emma", "Scott", "Nicole", "Brandon", "Helen",
	"Benjamin", "Samantha", "Samuel", "Katherine", "Raymond", "Christine", "Gregory", "Debra",
	"Frank", "Rachel", "Alexander", "Carolyn", "Patrick", "Janet", "Jack", "Catherine",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill",
	"Flores", "Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell",
	"Mitchell", "Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz",
	"Parker", "Cruz", "Edwards", "Collins", "Reyes", "Stewart", "Morris", "Morales",
}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "protonmail.com",
	"icloud.com", "mail.com", "fastmail.com", "example.com", "company.org",
}

// ── Message content ──

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore",
	"magna", "aliqua", "enim", "ad", "minim", "veniam", "quis", "nostrud",
	"exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea", "commodo",
	"consequat", "duis", "aute", "irure", "in", "reprehenderit", "voluptate",
	"velit", "esse", "cillum", "fugiat", "nulla", "pariatur", "excepteur", "sint",
	"occaecat", "cupidatat", "non", "proident", "sunt", "culpa", "qui", "officia",
	"deserunt", "mollit", "anim", "id", "est",
}
