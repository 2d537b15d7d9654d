// assettool is a CLI utility for inspecting the models and textures the demo loads.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Faultbox/lumen/internal/assets"
	"github.com/Faultbox/lumen/internal/engine/model"
	"github.com/Faultbox/lumen/internal/engine/texture"
	"github.com/Faultbox/lumen/internal/logger"
)

// assetExts are the file types the loaders understand.
var assetExts = map[string]bool{
	".obj": true,
	".mtl": true,
	".png": true,
	".jpg": true,
	".bmp": true,
	".tga": true,
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "model", "m":
		err = cmdModel(args)
	case "texture", "tex":
		err = cmdTexture(args)
	case "list", "ls":
		err = cmdList(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`assettool - lumen asset inspector

Usage:
  assettool <command> [options]

Commands:
  model [-root dir] [-v] <path.obj>   Show meshes, textures and bounds of a model
  texture <file>                      Decode a texture and show its size
  list <dir> [pattern]                List loadable assets under a directory

Examples:
  assettool model -root assets models/chopper.obj
  assettool texture assets/textures/plain.png
  assettool list assets "*.obj"`)
}

func cmdModel(args []string) error {
	flags := flag.NewFlagSet("model", flag.ExitOnError)
	root := flags.String("root", "", "Asset root the path is relative to")
	verbose := flags.Bool("v", false, "Log loader warnings to the console")
	flags.Parse(args)

	if flags.NArg() < 1 {
		return fmt.Errorf("usage: assettool model [-root dir] <path.obj>")
	}

	if *verbose {
		if err := logger.Init("debug", ""); err != nil {
			return err
		}
		defer logger.Sync()
	}

	mgr := assets.NewManager()
	defer mgr.Close()

	p := flags.Arg(0)
	if *root != "" {
		if err := mgr.AddRoot(*root); err != nil {
			return err
		}
	} else {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		p = abs
	}

	m, err := mgr.LoadModel(filepath.ToSlash(p))
	if err != nil {
		return err
	}
	printModel(m)
	return nil
}

func printModel(m *model.Model) {
	fmt.Printf("Model:     %s\n", m.Name)
	fmt.Printf("Meshes:    %d\n", len(m.Meshes))
	fmt.Printf("Triangles: %d\n", m.TriangleCount())
	fmt.Printf("Textures:  %d\n", len(m.Textures))
	fmt.Printf("Bounds:    (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		m.Bounds.Min[0], m.Bounds.Min[1], m.Bounds.Min[2],
		m.Bounds.Max[0], m.Bounds.Max[1], m.Bounds.Max[2])
	fmt.Println()

	for i, mesh := range m.Meshes {
		tex := "plain"
		if mesh.Texture != model.NoTexture {
			b := m.Textures[mesh.Texture].Bounds()
			tex = fmt.Sprintf("#%d (%dx%d)", mesh.Texture, b.Dx(), b.Dy())
		}
		fmt.Printf("  mesh %-3d vertices=%-7d triangles=%-7d texture=%s\n",
			i, mesh.VertexCount(), len(mesh.Indices)/3, tex)
	}
}

func cmdTexture(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: assettool texture <file>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	img, err := texture.Decode(args[0], data)
	if err != nil {
		return err
	}

	b := img.Bounds()
	fmt.Printf("Texture: %s\n", args[0])
	fmt.Printf("Size:    %dx%d\n", b.Dx(), b.Dy())
	fmt.Printf("Bytes:   %d (RGBA)\n", len(img.Pix))
	return nil
}

func cmdList(args []string) error {
	flags := flag.NewFlagSet("list", flag.ExitOnError)
	limit := flags.Int("n", 0, "Limit output to N files (0 = all)")
	flags.Parse(args)

	if flags.NArg() < 1 {
		return fmt.Errorf("usage: assettool list <dir> [pattern]")
	}
	dir := flags.Arg(0)

	pattern := ""
	if flags.NArg() > 1 {
		pattern = strings.ToLower(flags.Arg(1))
	}

	var files []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !assetExts[strings.ToLower(filepath.Ext(p))] {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if pattern != "" {
			matched, _ := filepath.Match(pattern, strings.ToLower(filepath.Base(rel)))
			if !matched && !strings.Contains(strings.ToLower(rel), pattern) {
				return nil
			}
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return err
	}
	sort.Strings(files)

	// Count by extension
	extCount := make(map[string]int)
	for i, f := range files {
		extCount[strings.ToLower(filepath.Ext(f))]++
		if *limit == 0 || i < *limit {
			fmt.Println(f)
		}
	}

	exts := make([]string, 0, len(extCount))
	for ext := range extCount {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	fmt.Fprintf(os.Stderr, "\n(%d files", len(files))
	for _, ext := range exts {
		fmt.Fprintf(os.Stderr, ", %s: %d", ext, extCount[ext])
	}
	fmt.Fprintln(os.Stderr, ")")
	return nil
}
