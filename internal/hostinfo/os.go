package hostinfo

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const osReleasePath = "/etc/os-release"

// ReadOSRelease extracts a display name for the operating system from an
// os-release file, following the os-release(5) format. PRETTY_NAME is
// preferred; otherwise NAME plus VERSION_ID is assembled.
func ReadOSRelease(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	osData := make(map[string]string)
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE or KEY="VALUE" format
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

		osData[key] = value
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if pretty, ok := osData["PRETTY_NAME"]; ok && pretty != "" {
		return pretty, nil
	}

	name, ok := osData["NAME"]
	if !ok || name == "" {
		return "", fmt.Errorf("no NAME or PRETTY_NAME in %s", path)
	}

	if version, ok := osData["VERSION_ID"]; ok && version != "" {
		return name + " " + version, nil
	}

	return name, nil
}
