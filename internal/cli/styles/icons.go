package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconGo        = "" // go gopher

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconCursor  = "" // chevron-right

	IconConfig   = "" // config
	IconDatabase = "" // database
	IconTrash    = "" // trash

	IconSessionStack = "" // clone/stack
	IconPlay         = "" // play (running)
	IconStop         = "" // stop (ended)
)
