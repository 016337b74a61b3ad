// Package pipeline runs the full documentation pass for one source file:
// parse, discover, annotate, then emit the commented copy, the markdown doc,
// and the generated test file.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/autodoc-ai/autodoc/ai"
	"github.com/autodoc-ai/autodoc/am"
	"github.com/autodoc-ai/autodoc/docgen"
	"github.com/autodoc-ai/autodoc/errors"
	"github.com/autodoc-ai/autodoc/logger"
	"github.com/autodoc-ai/autodoc/rewrite"
	"github.com/autodoc-ai/autodoc/summarize"
	"github.com/autodoc-ai/autodoc/syntax"
	"github.com/autodoc-ai/autodoc/testgen"
)

// Pipeline holds the pieces shared by every stage of a run.
type Pipeline struct {
	cfg   *am.Config
	gen   *summarize.Generator
	runID string
}

// New wires a pipeline. The client should already carry any usage tracking;
// runID ties log lines and tracking rows to one invocation.
func New(cfg *am.Config, client ai.Client, runID string) *Pipeline {
	return &Pipeline{
		cfg:   cfg,
		gen:   summarize.New(client, cfg.Generation.RequestsPerMinute),
		runID: runID,
	}
}

// Result reports what one run produced. DocPath or TestPath is empty when
// that stage was skipped after generation failures.
type Result struct {
	RunID    string
	Language syntax.Language

	CommentPath string
	DocPath     string
	TestPath    string

	Declarations     int
	CommentsInserted int
	CommentsSkipped  int
	TestsWritten     int
	TestsSkipped     int
}

// Run processes one source file. An unsupported extension or an unreadable
// file is fatal; generation failures degrade per node and never abort the
// run once parsing succeeded.
func (p *Pipeline) Run(ctx context.Context, filePath string) (*Result, error) {
	lang, err := syntax.LanguageForPath(filePath)
	if err != nil {
		return nil, err
	}

	source, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filePath)
	}

	log := logger.With(
		logger.FieldRunID, p.runID,
		logger.FieldFile, filePath,
		logger.FieldLanguage, string(lang),
	)
	log.Infow("starting run", logger.FieldSize, len(source))

	tree, err := syntax.Parse(ctx, source, lang)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	disc := syntax.Discover(tree)
	log.Infow("discovered declarations",
		logger.FieldCount, len(disc.Declarations),
		"classes", len(disc.ClassIDs),
		"imports", len(disc.Imports),
	)

	res := &Result{
		RunID:        p.runID,
		Language:     lang,
		Declarations: len(disc.Declarations),
	}

	annotator := &rewrite.Annotator{
		Summarizer: p.gen,
		MaxWidth:   p.cfg.Generation.MaxCommentWidth,
	}
	annotated, err := annotator.Annotate(ctx, tree, disc)
	if err != nil {
		return nil, err
	}
	res.CommentsInserted = annotated.Inserted
	res.CommentsSkipped = annotated.Skipped

	dir, file := filepath.Split(filePath)
	res.CommentPath = filepath.Join(dir, p.cfg.Output.CommentPrefix+file)
	if err := writeFileAtomic(res.CommentPath, annotated.Annotated); err != nil {
		return nil, err
	}
	log.Infow("wrote annotated source",
		logger.FieldFile, res.CommentPath,
		logger.FieldCount, annotated.Inserted,
	)

	if docPath, err := p.writeDoc(ctx, dir, file, annotated.Annotated); err != nil {
		log.Warnw("documentation generation failed, skipping doc file", logger.FieldError, err)
	} else {
		res.DocPath = docPath
	}

	if testPath, tres, err := p.writeTests(ctx, filePath, dir, file, string(annotated.Annotated), disc); err != nil {
		log.Warnw("test generation failed, skipping test file", logger.FieldError, err)
	} else {
		res.TestPath = testPath
		res.TestsWritten = tres.Written
		res.TestsSkipped = tres.Skipped
	}

	log.Infow("run complete",
		logger.FieldCount, res.CommentsInserted,
		"docs", res.DocPath != "",
		"tests", res.TestsWritten,
	)
	return res, nil
}

func (p *Pipeline) writeDoc(ctx context.Context, dir, file string, annotated []byte) (string, error) {
	md, err := docgen.Generate(ctx, p.gen, string(annotated))
	if err != nil {
		return "", err
	}

	docsDir := filepath.Join(dir, p.cfg.Output.DocsDir)
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating %s", docsDir)
	}

	stem := strings.TrimSuffix(file, filepath.Ext(file))
	docPath := filepath.Join(docsDir, p.cfg.Output.DocPrefix+stem+".md")
	if err := writeFileAtomic(docPath, []byte(md)); err != nil {
		return "", err
	}
	return docPath, nil
}

// writeTests generates from the annotated buffer, not the pristine source:
// the inserted docstrings give the model intent the bare code lacks.
func (p *Pipeline) writeTests(ctx context.Context, filePath, dir, file, annotated string, disc *syntax.Discovery) (string, *testgen.Result, error) {
	testsDir := filepath.Join(dir, p.cfg.Output.TestsDir)
	testPath := filepath.Join(testsDir, p.cfg.Output.TestPrefix+file)

	tres, err := testgen.Generate(ctx, p.gen, annotated, methodNames(disc), filePath, testPath)
	if err != nil {
		return "", nil, err
	}

	if err := os.MkdirAll(testsDir, 0o755); err != nil {
		return "", nil, errors.Wrapf(err, "creating %s", testsDir)
	}
	if err := writeFileAtomic(testPath, []byte(tres.Source)); err != nil {
		return "", nil, err
	}
	return testPath, tres, nil
}

// methodNames lists named functions in discovery order; properties and
// anonymous declarations carry nothing a test could call.
func methodNames(disc *syntax.Discovery) []string {
	var names []string
	for _, decl := range disc.Declarations {
		if decl.Kind == syntax.KindFunction && decl.Name != "" {
			names = append(names, decl.Name)
		}
	}
	return names
}

// writeFileAtomic writes via a temp file in the target directory and
// renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".autodoc-*")
	if err != nil {
		return errors.Wrapf(err, "creating temp file in %s", dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "closing temp file for %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "renaming into %s", path)
	}
	return nil
}
