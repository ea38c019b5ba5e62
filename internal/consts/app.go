package consts

const (
	ApplicationName    = "Karondoran Server"
	ApplicationVersion = "1.0.0"
)
