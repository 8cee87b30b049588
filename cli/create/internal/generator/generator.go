// Package generator materializes a template tree into a project directory.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"

	"github.com/victor-iyi/project/cli/create/internal/project"
	"github.com/victor-iyi/project/cli/create/internal/templatecfg"
	"github.com/victor-iyi/project/cli/errs"
	"github.com/victor-iyi/project/cli/templates"
	"github.com/victor-iyi/project/cli/util"
)

// Generator walks one template tree and produces the project tree: entries
// are filtered, path segments renamed, template files rendered and all
// other files copied as they are.
type Generator struct {
	// TemplateDir is the root of the template tree.
	TemplateDir string
	// Target describes the project being generated.
	Target *project.Target
	// Config is the effective template configuration.
	Config *templatecfg.TemplateConfig
	// Vars is the final variable mapping for the templating engines.
	Vars map[string]string
}

// Generate produces the target tree. An excluded directory is pruned whole:
// its contents are never visited. The first filesystem or rendering error
// aborts the walk and may leave the target partially populated.
func (generator *Generator) Generate() error {
	if !util.IsDir(generator.TemplateDir) {
		return errs.Newf(errs.NotADirectory, "template directory %q does not exist",
			generator.TemplateDir)
	}

	return filepath.Walk(generator.TemplateDir, generator.visit)
}

func (generator *Generator) visit(srcPath string, fileInfo os.FileInfo, err error) error {
	if err != nil {
		return errs.WrapFS(err, fmt.Sprintf("cannot read %q", srcPath))
	}

	if srcPath == generator.TemplateDir {
		return generator.Target.EnsureDir()
	}

	if generator.Config.Excluded(fileInfo.Name()) {
		log.Debugf("Skipping %q", srcPath)
		if fileInfo.IsDir() {
			return filepath.SkipDir
		}
		return nil
	}

	relPath, err := util.DiffPaths(srcPath, generator.TemplateDir)
	if err != nil {
		return err
	}
	dstPath := filepath.Join(generator.Target.Path, generator.renamePath(relPath))

	if fileInfo.IsDir() {
		return util.CreateDirectory(dstPath, fileInfo.Mode().Perm())
	}

	engine := templates.ForExtension(filepath.Ext(srcPath))
	dstPath = templates.StripTemplateExt(dstPath)
	log.Debugf("Rendering %q to %q with the %s engine", srcPath, dstPath, engine.Name())
	return engine.RenderFile(srcPath, dstPath, generator.Vars)
}

// renamePath substitutes whole path segments of relPath according to the
// rename map. A segment is replaced only on exact equality with a key, so a
// key never matches inside an unrelated segment.
func (generator *Generator) renamePath(relPath string) string {
	if len(generator.Config.Rename) == 0 {
		return relPath
	}

	segments := strings.Split(relPath, string(filepath.Separator))
	for i, segment := range segments {
		if renamed, ok := generator.Config.Rename[segment]; ok {
			segments[i] = renamed
		}
	}
	return filepath.Join(segments...)
}
