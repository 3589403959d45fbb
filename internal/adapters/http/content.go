package web

// rulesMarkdown is the public rulebook. Served on /rules and inside the
// dashboard; rendered through goldmark so organizers can edit it as
// plain markdown.
const rulesMarkdown = `# Hackfest Rules

## Teams

- Teams have **1 to 5 members**. Solo participation is allowed but not recommended.
- Every team has exactly one leader. Only the leader can send invites,
  disband the team, or manage the submission.
- You can be a member of at most one team at a time. Leave your current
  team before accepting another invite.

## Registration

- Register with your institute email where possible.
- Email verification is required before you can log in.
- Details (name, college, state) must be accurate; they appear on your
  certificate.

## Submissions

- One submission per team.
- A submission can be deleted and re-made while it is **pending**.
  Accepted or rejected submissions are final.
- Plagiarised submissions lead to immediate disqualification.

## Judging

- Each problem statement is evaluated by assigned judges.
- Scores cover innovation, execution, and presentation.
- Deployed, working demos score higher than slideware.
- The judges' decision is final.

## Conduct

- Be respectful. Harassment of any kind means removal from the event.
- Organizers may clarify or amend these rules; changes are announced on
  the dashboard.
`

// organizerGroup is one section of the meet-the-team page.
type organizerGroup struct {
	Title   string
	Members []organizer
}

type organizer struct {
	Name  string
	Role  string
	Photo string // path under /static/
}

// organizerGroups is the meet-the-team roster, in display order.
var organizerGroups = []organizerGroup{
	{
		Title: "Core",
		Members: []organizer{
			{Name: "Aarav Mehta", Role: "Convener", Photo: "/static/img/team/aarav.jpg"},
			{Name: "Diya Sharma", Role: "Co-Convener", Photo: "/static/img/team/diya.jpg"},
			{Name: "Rohan Iyer", Role: "Operations Lead", Photo: "/static/img/team/rohan.jpg"},
		},
	},
	{
		Title: "Tech",
		Members: []organizer{
			{Name: "Sneha Kulkarni", Role: "Platform Lead", Photo: "/static/img/team/sneha.jpg"},
			{Name: "Arjun Nair", Role: "Backend", Photo: "/static/img/team/arjun.jpg"},
			{Name: "Ishita Rao", Role: "Frontend", Photo: "/static/img/team/ishita.jpg"},
		},
	},
	{
		Title: "Outreach",
		Members: []organizer{
			{Name: "Kabir Singh", Role: "Sponsorships", Photo: "/static/img/team/kabir.jpg"},
			{Name: "Meera Pillai", Role: "Design & Socials", Photo: "/static/img/team/meera.jpg"},
		},
	},
}
