package version

// Version es la versión actual de conventional-emojis
// Esta versión debe actualizarse en cada release
const Version = "1.0.0"

// FullVersion retorna la versión con el prefijo v
func FullVersion() string {
	return "v" + Version
}
