package domain

// Screen names which view the presentation layer should render. Navigation
// is unconditional: the controller stores whatever token it is handed, and
// it is the presentation layer's responsibility to request only valid
// destinations.
type Screen string

// Screens known to the mobile client.
const (
	ScreenLogin             Screen = "login"
	ScreenRecover           Screen = "recover"
	ScreenHome              Screen = "home"
	ScreenUserManagement    Screen = "user-management"
	ScreenRegisterUser      Screen = "register-user"
	ScreenListUsers         Screen = "list-users"
	ScreenRegisterEquipment Screen = "register-equipment"
	ScreenRegisterMovement  Screen = "register-movement"
	ScreenBrowseRecords     Screen = "browse-records"
	ScreenGenerateReport    Screen = "generate-report"
)
