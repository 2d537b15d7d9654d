package assets

import (
	"bufio"
	"io"
	"strings"
)

// parseMTL returns the diffuse texture path of every material that has one.
func parseMTL(r io.Reader) (map[string]string, error) {
	textures := make(map[string]string)
	current := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "newmtl":
			current = strings.Join(fields[1:], " ")
		case "map_Kd":
			// Options such as -bm or -s come before the file name
			if current != "" {
				textures[current] = strings.ReplaceAll(fields[len(fields)-1], `\`, "/")
			}
		}
	}
	return textures, scanner.Err()
}
