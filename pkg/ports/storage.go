package ports

// Storage abstracts the host files the simulator reads and writes:
// scripts, exported snapshots and rendered images. It is unrelated to
// the simulated FAT volume.
type Storage interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating parent directories.
	WriteFile(path string, data []byte) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)
}
