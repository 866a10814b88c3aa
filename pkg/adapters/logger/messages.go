package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("es", l10n.LexiconMap{
		// Session (info)
		"File '%s' allocated: %d bytes, %d clusters": "Archivo '%s' asignado correctamente: %d bytes, %d clusters",
		"File '%s' deleted":                          "Archivo '%s' eliminado correctamente",
		"File system initialized":                    "Sistema FAT inicializado correctamente",
		"Consistency check passed":                   "Verificación de consistencia correcta",

		// Session (warn/error)
		"Cannot allocate '%s': %s":       "No se pudo asignar '%s': %s",
		"Cannot delete '%s': %s":         "No se pudo eliminar '%s': %s",
		"Consistency check failed: %s":   "Falló la verificación de consistencia: %s",
		"the file is too large":          "el archivo es demasiado grande",
		"the root directory is full":     "el directorio raíz está lleno",
		"not enough free clusters":       "no hay suficientes clusters libres",
		"file not found":                 "archivo no encontrado",
		"the size must not be negative":  "el tamaño no puede ser negativo",
		"internal consistency fault: %s": "fallo interno de consistencia: %s",

		// Demo sections
		"Step 1: creating initial files":                     "PASO 1: Creando archivos iniciales",
		"Step 2: deleting the middle file":                   "PASO 2: Eliminando el archivo central",
		"Step 3: creating a new file (D) that fills the gap": "PASO 3: Creando nuevo archivo (D) que rellena el hueco",
		"Step 4: final cleanup":                              "PASO 4: Limpieza final",

		// Engine (debug)
		"Initialized %d clusters and %d directory slots":   "Inicializados %d clusters y %d entradas de directorio",
		"Allocated %s: %d bytes, %d clusters from %d":      "Asignado %s: %d bytes, %d clusters desde %d",
		"Deleted %s, released chain from %d":               "Eliminado %s, cadena liberada desde %d",
		"Drawing %d clusters and %d files on %dx%d canvas": "Dibujando %d clusters y %d archivos en un lienzo de %dx%d",

		// Reports
		"ROOT DIRECTORY":       "DIRECTORIO RAÍZ",
		"Name":                 "Nombre",
		"Size":                 "Tamaño",
		"Start":                "Inicio",
		"(empty directory)":    "(Directorio vacío)",
		"FAT TABLE":            "TABLA FAT",
		"Cluster":              "Cluster",
		"Value":                "Valor",
		"State / Pointer":      "Estado / Puntero",
		"FREE":                 "LIBRE",
		"END OF FILE (EOF)":    "FIN DE ARCHIVO (EOF)",
		"NEXT CLUSTER -> %d":   "SIGUIENTE CLUSTER -> %d",
		"STATISTICS":           "ESTADÍSTICAS",
		"Total clusters: %d":   "Total clusters: %d",
		"Free clusters: %d":    "Clusters libres: %d",
		"Used clusters: %d":    "Clusters ocupados: %d",
		"Free space: %d bytes": "Espacio libre: %d bytes",
		"Used space: %d bytes": "Espacio ocupado: %d bytes",

		// Shell
		"FAT SYSTEM":            "SISTEMA FAT",
		"Create file":           "Crear archivo",
		"Delete file":           "Eliminar archivo",
		"Show directory":        "Mostrar directorio",
		"Show FAT table":        "Mostrar tabla FAT",
		"Show statistics":       "Mostrar estadísticas",
		"Reinitialize system":   "Reinicializar sistema",
		"Check consistency":     "Verificar consistencia",
		"Exit":                  "Salir",
		"Option: ":              "Opción: ",
		"File name: ":           "Nombre del archivo: ",
		"Size (bytes): ":        "Tamaño (bytes): ",
		"File name to delete: ": "Nombre del archivo a eliminar: ",
		"Invalid size: %s":      "Tamaño inválido: %s",
		"Invalid option.":       "Opción inválida.",
		"Exiting...":            "Saliendo del sistema...",
	})
}
