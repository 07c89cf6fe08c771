// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testTools struct {
	Latex string `default:"latex"`
}

type testConfig struct {
	Formula  string   `flag:"f,formula" desc:"the formula"`
	FontSize float32  `flag:"s,font-size" default:"10"`
	Count    int      `default:"2"`
	Watched  string   `cmd:"watch" posarg:"0"`
	Document string   `posarg:"1"`
	Verbose  bool     `flag:"v,verbose"`
	VV       bool     `flag:"vv"`
	Tools    testTools
	Includes []string `flag:"config"`
}

func (c *testConfig) IncludesPtr() *[]string { return &c.Includes }

func testCmds(ran *string) []*Cmd[*testConfig] {
	var cmds []*Cmd[*testConfig]
	cmds = AddCmd(cmds, &Cmd[*testConfig]{Name: "import", Root: true, Doc: "import a formula", Func: func(c *testConfig) error {
		*ran = "import"
		return nil
	}})
	cmds = AddCmd(cmds, &Cmd[*testConfig]{Name: "watch", Root: true, Func: func(c *testConfig) error {
		*ran = "watch"
		return nil
	}})
	return cmds
}

func testOptions() *Options {
	opts := DefaultOptions("cli-test")
	opts.IncludePaths = nil
	opts.IgnoreUnknown = true
	return opts
}

func TestAddCmd(t *testing.T) {
	var ran string
	cmds := testCmds(&ran)
	require.Len(t, cmds, 2)
	assert.True(t, cmds[0].Root)
	assert.False(t, cmds[1].Root)
	cmds = AddCmd(cmds, &Cmd[*testConfig]{Name: "watch"})
	assert.Len(t, cmds, 2)
}

func TestSetFromArgs(t *testing.T) {
	cfg := &testConfig{}
	fields := AddFields(cfg, "import")
	pos, err := SetFromArgs(testOptions(), fields, []string{
		"-f", "$x$", "--font-size=12", "-vv", "--id=path1", "--latex", "/opt/latex -8bit", "drawing.svg", "--count=5",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"drawing.svg"}, pos)
	assert.Equal(t, "$x$", cfg.Formula)
	assert.Equal(t, float32(12), cfg.FontSize)
	assert.True(t, cfg.VV)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "/opt/latex -8bit", cfg.Tools.Latex)
	assert.Equal(t, 5, cfg.Count)

	pos, err = SetFromArgs(testOptions(), fields, []string{"--verbose=false", "--fontSize", "9", "--", "-odd.svg"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-odd.svg"}, pos)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, float32(9), cfg.FontSize)

	// unknown flags take a following value, but not a following flag
	pos, err = SetFromArgs(testOptions(), fields, []string{"--id", "path1", "--unknown", "-f", "$y$", "--selected-nodes", "path2:3", "drawing.svg"})
	require.NoError(t, err)
	assert.Equal(t, []string{"drawing.svg"}, pos)
	assert.Equal(t, "$y$", cfg.Formula)

	strict := testOptions()
	strict.IgnoreUnknown = false
	_, err = SetFromArgs(strict, fields, []string{"--id=path1"})
	assert.Error(t, err)
	_, err = SetFromArgs(strict, fields, []string{"--formula"})
	assert.Error(t, err)
	_, err = SetFromArgs(strict, fields, []string{"--count=many"})
	assert.Error(t, err)
	_, err = SetFromArgs(strict, fields, []string{"-v=maybe"})
	assert.Error(t, err)
	_, err = SetFromArgs(strict, fields, []string{"-h"})
	assert.ErrorIs(t, err, ErrHelp)
}

func TestAddFields(t *testing.T) {
	fields := AddFields(&testConfig{}, "import")
	assert.Nil(t, findField(fields, "watched"))
	require.NotNil(t, findField(fields, "latex"))
	assert.Equal(t, "Tools.Latex", findField(fields, "latex").Name)
	assert.Equal(t, []string{"count"}, findField(fields, "count").Names)

	fields = AddFields(&testConfig{}, "watch")
	pfs := posArgFields(fields)
	require.Len(t, pfs, 2)
	assert.Equal(t, "Watched", pfs[0].Name)
	assert.Equal(t, "Document", pfs[1].Name)
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cli-test.toml"), []byte("formula = \"$a$\"\ncount = 7\n[tools]\nlatex = \"mylatex\"\n"), 0o666))
	extra := filepath.Join(dir, "extra.yaml")
	require.NoError(t, os.WriteFile(extra, []byte("count: 8\nfontsize: 14\n"), 0o666))

	opts := testOptions()
	opts.IncludePaths = []string{dir}

	var ran string
	cmds := testCmds(&ran)
	cfg := &testConfig{}
	cmd, err := Config(opts, cfg, []string{"--config", extra, "-f", "$b$", "in.svg"}, cmds...)
	require.NoError(t, err)
	assert.Equal(t, "import", cmd)
	assert.Equal(t, "$b$", cfg.Formula) // flags override files
	assert.Equal(t, 8, cfg.Count)       // later files override earlier ones
	assert.Equal(t, float32(14), cfg.FontSize)
	assert.Equal(t, "mylatex", cfg.Tools.Latex)
	assert.Equal(t, "in.svg", cfg.Document)

	cfg = &testConfig{}
	cmd, err = Config(opts, cfg, []string{"watch", "f.tex", "in.svg"}, cmds...)
	require.NoError(t, err)
	assert.Equal(t, "watch", cmd)
	assert.Equal(t, "f.tex", cfg.Watched)
	assert.Equal(t, "in.svg", cfg.Document)

	_, err = Config(opts, &testConfig{}, []string{"a.svg", "b.svg"}, cmds...)
	assert.Error(t, err)
	_, err = Config(opts, &testConfig{}, []string{"--config", filepath.Join(dir, "none.toml")}, cmds...)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(extra, []byte("count: [\n"), 0o666))
	_, err = Config(opts, &testConfig{}, []string{"--config", extra}, cmds...)
	assert.Error(t, err)
}

func TestRunArgs(t *testing.T) {
	var ran string
	cmds := testCmds(&ran)
	require.NoError(t, RunArgs(testOptions(), &testConfig{}, []string{"-f", "x"}, cmds...))
	assert.Equal(t, "import", ran)
	require.NoError(t, RunArgs(testOptions(), &testConfig{}, []string{"watch", "f.tex"}, cmds...))
	assert.Equal(t, "watch", ran)

	ran = ""
	require.NoError(t, RunArgs(testOptions(), &testConfig{}, []string{"help"}, cmds...))
	assert.Empty(t, ran)
	assert.Error(t, RunCmd(testOptions(), &testConfig{}, "nope", cmds...))
}

func TestUsage(t *testing.T) {
	var ran string
	u := Usage(testOptions(), &testConfig{}, "", testCmds(&ran)...)
	assert.Contains(t, u, "import")
	assert.Contains(t, u, "(default)")
	assert.Contains(t, u, "import a formula")
	assert.Contains(t, u, "the formula")
	assert.Contains(t, u, "(default 10)")
	assert.Contains(t, u, "[document]")
	assert.NotContains(t, u, "[watched]")
}
