// Package main provides localization for the fatsim CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Spanish translations for CLI messages.
	l10n.Register("es", l10n.LexiconMap{
		// Flag categories
		"Configuration": "Configuración",
		"Geometry":      "Geometría",
		"Output":        "Salida",
		"Logging":       "Registro",

		// Root command
		"Simulate cluster allocation on a FAT-style filesystem": "Simula la asignación de clusters en un sistema de archivos tipo FAT",

		// Global flags
		"YAML configuration file":              "Archivo de configuración YAML",
		"Number of directory slots":            "Número de entradas del directorio",
		"Number of clusters in the table":      "Número de clusters de la tabla",
		"Bytes per cluster":                    "Bytes por cluster",
		"Output format (text or yaml)":         "Formato de salida (text o yaml)",
		"Log level (debug, info, warn, error)": "Nivel de registro (debug, info, warn, error)",
		"Suppress all log output":              "Suprimir todos los mensajes",

		// Commands
		"Run the four-phase allocation walkthrough":  "Ejecuta la demostración de asignación en cuatro pasos",
		"Run the script of a YAML file":              "Ejecuta el guion de un archivo YAML",
		"Start the interactive menu":                 "Inicia el menú interactivo",
		"Draw the cluster table as a PNG image":      "Dibuja la tabla de clusters como imagen PNG",
		"Show version information":                   "Muestra la versión",
		"Output PNG file path":                       "Ruta del archivo PNG de salida",
		"Write the final state as YAML to this path": "Escribe el estado final como YAML en esta ruta",

		// Messages
		"Error: %s":                    "Error: %s",
		"fatsim version %s":            "fatsim versión %s",
		"the script is empty":          "el guion está vacío",
		"%d of %d steps were rejected": "%d de %d pasos fueron rechazados",
		"file not found":               "archivo no encontrado",
		"State exported to %s":         "Estado exportado a %s",
		"Cluster map saved to %s":      "Mapa de clusters guardado en %s",
	})
}
