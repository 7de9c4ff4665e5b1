package ui

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Info    = color.New(color.FgCyan)
)

// PrintSuccess imprime un mensaje de éxito en verde
func PrintSuccess(msg string) {
	fmt.Println(Success.Sprint(msg))
}

// PrintError imprime un mensaje de error en rojo
func PrintError(msg string) {
	fmt.Println(Error.Sprint(msg))
}

// PrintInfo imprime una nota informativa
func PrintInfo(msg string) {
	fmt.Println(Info.Sprint(msg))
}
