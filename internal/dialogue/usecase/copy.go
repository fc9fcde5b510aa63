package usecase

import "fmt"

// All user-facing copy lives here so the flow logic stays readable.

const mainMenu = "What's our mission for today?\n\n" +
	"1️⃣ *Find a new job* (Tafuta Kazi)\n" +
	"2️⃣ *Learn a new skill* (Jifunze Ujuzi)\n" +
	"3️⃣ *Connect with a mentor* (Pata Ushauri)\n" +
	"4️⃣ *Explore a business idea* (Anzisha Biashara)\n" +
	"5️⃣ *Build a simple CV*\n" +
	"6️⃣ *AI Interview Practice*\n" +
	"7️⃣ *Generate a Cover Letter*\n" +
	"8️⃣ *Optimize My CV for a Job*\n" +
	"9️⃣ *Analyze Job Skills*\n\n" +
	"Just reply with the number of your choice, or type '0' to reset."

const newUserIntroduction = "I can help you find jobs (kazi), learn new skills (mafunzo), " +
	"connect with mentors (ushauri), or explore business ideas (biashara)."

const (
	resetReply      = "👋 Your session has been reset. Type 'hi' to start again."
	fallbackReply   = "❓ I didn't understand that. Please choose a number from the menu or type 'menu' to start over."
	yesNoReply      = "Please answer with 'yes' or 'no'."
	fieldYesNoReply = "Please reply with 'yes' or 'no'."
)

func newUserGreetings(name string) []string {
	return []string{
		fmt.Sprintf("Hi %s, it's great to meet you! I'm KaziLeo, your new career companion.", name),
		fmt.Sprintf("Sasa %s! It's great to meet you. My name is KaziLeo, and I'm here to help you on your career journey.", name),
		fmt.Sprintf("Karibu %s! I'm KaziLeo, your personal guide to jobs and skills in Kenya.", name),
	}
}

func returningGreetings(name string) []string {
	return []string{
		fmt.Sprintf("Hey %s! Great to see you again.", name),
		fmt.Sprintf("Welcome back, %s! Ready to pick up where we left off?", name),
		fmt.Sprintf("Karibu tena, %s! Let's find some more opportunities for you.", name),
		fmt.Sprintf("Niaje %s! Good to see you again.", name),
	}
}

var shengGreetingReplies = []string{"Poa!", "Fiti sana!", "Poa poa."}
