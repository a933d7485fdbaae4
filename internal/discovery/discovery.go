// Package discovery locates the agent installation root and enumerates
// the categorized file sets a scan inspects. Enumeration uses explicit,
// depth-bounded glob patterns rather than recursive walks, and every
// symlink is resolved and checked against the trusted root before it is
// admitted to the inventory.
package discovery

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Files is the categorized inventory of absolute paths built once per
// scan. Every listed path either lies under the declared roots or was
// validated as a benign symlink target; symlinks resolving outside the
// trusted root are excluded and reported as warnings.
type Files struct {
	Root          string
	WorkspaceRoot string

	Config         []string
	Env            []string
	Credentials    []string
	AuthProfiles   []string
	SessionLogs    []string
	WorkspaceDocs  []string
	SkillFiles     []string
	SkillManifests []string
	CustomCommands []string
	PrivateKeys    []string
	SSHKeys        []string
}

// Count returns the total number of discovered files across all categories.
func (f *Files) Count() int {
	return len(f.Config) + len(f.Env) + len(f.Credentials) +
		len(f.AuthProfiles) + len(f.SessionLogs) + len(f.WorkspaceDocs) +
		len(f.SkillFiles) + len(f.SkillManifests) + len(f.CustomCommands) +
		len(f.PrivateKeys) + len(f.SSHKeys)
}

// defaultRoots lists the installation locations probed when no explicit
// path is given, in priority order. The clawdbot name is the legacy
// install directory.
func defaultRoots() []string {
	var roots []string
	if env := os.Getenv("OPENCLAW_HOME"); env != "" {
		roots = append(roots, env)
	}
	roots = append(roots, "~/.openclaw", "~/.clawdbot")
	return roots
}

// LocateRoot finds the agent installation root. A non-empty custom path
// is probed directly (with home expansion); otherwise the platform
// default locations are probed in order. Returns ErrRootNotFound when
// nothing readable exists, the only fatal condition in the pipeline.
func LocateRoot(custom string) (string, error) {
	candidates := defaultRoots()
	if custom != "" {
		candidates = []string{custom}
	}
	for _, c := range candidates {
		path := ExpandHome(c)
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		return abs, nil
	}
	return "", ErrRootNotFound
}

// ExpandHome replaces a leading ~ with the current user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// Discover enumerates every file category under root (and the optional
// workspace root) and returns the inventory plus non-fatal warnings.
// Missing files and directories yield empty categories; discovery never
// returns an error.
func Discover(root, workspaceRoot string) (*Files, []string) {
	root = canonicalize(root)
	if workspaceRoot == "" {
		workspaceRoot = filepath.Join(root, "workspace")
	}
	workspaceRoot = canonicalize(workspaceRoot)

	var warnings []string
	d := &discoverer{
		roots:    []string{root, workspaceRoot},
		warnings: &warnings,
	}

	files := &Files{
		Root:          root,
		WorkspaceRoot: workspaceRoot,

		Config: d.collect(
			filepath.Join(root, "openclaw.json"),
			filepath.Join(root, "clawdbot.json"),
			filepath.Join(root, "config", "openclaw.json"),
		),
		Env: d.collect(
			filepath.Join(root, ".env"),
			filepath.Join(root, ".env.local"),
			filepath.Join(workspaceRoot, ".env"),
		),
		Credentials: d.collect(
			filepath.Join(root, "credentials", "*.json"),
			filepath.Join(root, "credentials", "*.token"),
		),
		AuthProfiles: d.collect(
			filepath.Join(root, "agents", "*", "agent", "auth-profiles.json"),
			filepath.Join(root, "credentials", "auth-profiles*.json"),
		),
		SessionLogs: d.collect(
			filepath.Join(root, "agents", "*", "sessions", "*.jsonl"),
			filepath.Join(root, "logs", "*.log"),
		),
		WorkspaceDocs: d.collect(
			filepath.Join(workspaceRoot, "*.md"),
			filepath.Join(workspaceRoot, "memory", "*.md"),
		),
		SkillFiles: d.collect(
			filepath.Join(root, "skills", "*", "SKILL.md"),
			filepath.Join(workspaceRoot, "skills", "*", "SKILL.md"),
		),
		SkillManifests: d.collect(
			filepath.Join(root, "skills", "*", "skill.yaml"),
			filepath.Join(workspaceRoot, "skills", "*", "skill.yaml"),
		),
		CustomCommands: d.collect(
			filepath.Join(root, "commands", "*.md"),
			filepath.Join(workspaceRoot, "commands", "*.md"),
		),
		PrivateKeys: d.collect(
			filepath.Join(root, "*.pem"),
			filepath.Join(root, "*.key"),
			filepath.Join(root, "credentials", "*.pem"),
		),
	}

	// SSH keys live outside the installation; they are validated
	// against the home directory as their own trusted base.
	if home, err := os.UserHomeDir(); err == nil {
		hd := &discoverer{roots: []string{canonicalize(home)}, warnings: &warnings}
		files.SSHKeys = hd.collect(filepath.Join(home, ".ssh", "id_*"))
		files.SSHKeys = dropPublicKeys(files.SSHKeys)
	}

	return files, warnings
}

// discoverer enumerates glob patterns and enforces the symlink boundary
// against its trusted roots.
type discoverer struct {
	roots    []string
	warnings *[]string
}

// collect expands each pattern and returns the admitted regular files.
// Patterns without metacharacters act as direct path probes. All
// filesystem errors degrade to skipping the affected path.
func (d *discoverer) collect(patterns ...string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}
		for _, m := range matches {
			abs, err := filepath.Abs(m)
			if err != nil || seen[abs] {
				continue
			}
			if !d.admit(abs) {
				continue
			}
			seen[abs] = true
			out = append(out, abs)
		}
	}
	return out
}

// admit reports whether path is a regular file whose resolved location
// lies inside one of the trusted roots. Symlinks pointing outside the
// boundary are rejected with a warning naming both the link and its
// target; an attacker-controlled link must not redirect the auditor to
// unrelated content or hide real configuration behind an external target.
func (d *discoverer) admit(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	if info.Mode()&os.ModeSymlink != 0 {
		target, err := filepath.EvalSymlinks(path)
		if err != nil {
			d.warn("symlink " + path + " could not be resolved; skipping")
			return false
		}
		if !d.inside(target) {
			d.warn("symlink boundary violation: " + path + " resolves to " + target + " outside the trusted root")
			return false
		}
		tinfo, err := os.Stat(target)
		if err != nil || !tinfo.Mode().IsRegular() {
			return false
		}
		return true
	}
	return info.Mode().IsRegular()
}

// inside reports whether path lies under any trusted root. Comparison
// is exact on case-sensitive filesystems (linux) and case-folded
// elsewhere, where the default filesystems ignore case.
func (d *discoverer) inside(path string) bool {
	for _, root := range d.roots {
		p, r := path, root
		if runtime.GOOS != "linux" {
			p = strings.ToLower(p)
			r = strings.ToLower(r)
		}
		if p == r || strings.HasPrefix(p, r+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (d *discoverer) warn(msg string) {
	*d.warnings = append(*d.warnings, msg)
}

// canonicalize resolves base directory symlinks so boundary comparisons
// use the same canonical form on both sides.
func canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs
	}
	return resolved
}

// dropPublicKeys filters .pub companions out of an SSH key listing.
func dropPublicKeys(keys []string) []string {
	var out []string
	for _, k := range keys {
		if strings.HasSuffix(k, ".pub") {
			continue
		}
		out = append(out, k)
	}
	return out
}
