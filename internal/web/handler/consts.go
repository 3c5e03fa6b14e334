package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// AdminLayout wraps the admin panel pages.
	AdminLayout = "layouts/admin"

	// RootPath is the root path the route group.
	RootPath = "/"

	// RouterRootPath is the root path inside a route group.
	RouterRootPath = "/"

	// APIPath prefixes the JSON endpoints.
	APIPath = RootPath + "api"

	// AdminPath prefixes the admin panel.
	AdminPath = RootPath + "admin"

	// ErrNilACDFatalLogMsg is used if app, cfg or deps is nil.
	ErrNilACDFatalLogMsg = "app, cfg or deps is nil"
)

// Keys of values stored in fiber.Locals and passed on to every template.
const (
	LocalsSite              = "Site"
	LocalsAnnouncement      = "Announcement"
	LocalsAnnouncementLevel = "AnnouncementLevel"
	LocalsCurrentUser       = "CurrentUser"
)
