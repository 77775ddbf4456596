// Package promo holds the static content of the informational overlay: the
// app functionality notes and the cross-promotion cards.
package promo

import (
	"fmt"
	"strings"
)

// Card is one cross-promotion entry.
type Card struct {
	Icon        string
	Name        string
	Description string
	Link        string
}

// Title heads the overlay.
const Title = "Ads & App Functionality"

// Credit closes the overlay.
const Credit = "What Day? is developed by Three Dollar."

// Functionality lists what the app does, one bullet per entry.
var Functionality = []string{
	"Users can scroll to choose a date.",
	"The app displays the corresponding day of the week for the selected date.",
	"It can show results for dates ranging from the year 1800 to 2300.",
}

// Cards are shown in this order.
var Cards = []Card{
	{
		Icon:        "🆘",
		Name:        "SOS Light",
		Description: "SOS Light is designed to maximize the chances of getting help in emergency situations",
		Link:        "https://apps.apple.com/app/s0s-light/id6504213303",
	},
	{
		Icon:        "💊",
		Name:        "Take Medication",
		Description: "Just press any of the 24 buttons, each representing an hour of the day, and you'll get timely reminders to take your medication. It's easy, quick, and ensures you never miss a dose!",
		Link:        "https://apps.apple.com/id/app/take-medication/id6736924598",
	},
	{
		Icon:        "⏰",
		Name:        "TimeTell",
		Description: "Announce the time every 30 seconds, no more guessing and checking your watch, for time-sensitive tasks.",
		Link:        "https://apps.apple.com/id/app/loopspeak/id6473384030",
	},
	{
		Icon:        "🎤",
		Name:        "Sing LOOP",
		Description: "Record your voice effortlessly, and play it back in a loop.",
		Link:        "https://apps.apple.com/id/app/sing-l00p/id6480459464",
	},
	{
		Icon:        "🔁",
		Name:        "LOOPSpeak",
		Description: "Type or paste your text, play in loop, and enjoy hands-free narration.",
		Link:        "https://apps.apple.com/id/app/loopspeak/id6473384030",
	},
	{
		Icon:        "🐑",
		Name:        "Insomnia Sheep",
		Description: "Design to ease your mind and help you relax leading up to sleep.",
		Link:        "https://apps.apple.com/id/app/insomnia-sheep/id6479727431",
	},
	{
		Icon:        "👁",
		Name:        "Dry Eye Read",
		Description: "The go-to solution for a comfortable reading experience, by adjusting font size and color to suit your reading experience.",
		Link:        "https://apps.apple.com/id/app/dry-eye-read/id6474282023",
	},
	{
		Icon:        "✨",
		Name:        "iProgramMe",
		Description: "Custom affirmations, schedule notifications, stay inspired daily.",
		Link:        "https://apps.apple.com/id/app/iprogramme/id6470770935",
	},
	{
		Icon:        "🏁",
		Name:        "TemptationTrack",
		Description: "One button to track milestones, monitor progress, stay motivated.",
		Link:        "https://apps.apple.com/id/app/temptationtrack/id6471236988",
	},
}

// Markdown builds the overlay document. Cards are rendered separately as a
// table, so only the prose sections appear here.
func Markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", Title)
	sb.WriteString("## App Functionality\n\n")
	for _, line := range Functionality {
		fmt.Fprintf(&sb, "- %s\n", line)
	}
	fmt.Fprintf(&sb, "\n**%s**\n", Credit)
	return sb.String()
}
