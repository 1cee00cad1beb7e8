package main

import (
	"os"

	"shelter-records/internal/cli"
)

// @title Shelter Records API
// @version 1.0
// @description Registros del refugio: animales, historias clínicas, adopciones, donantes, donaciones, voluntarios y cuentas.
// @BasePath /
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
