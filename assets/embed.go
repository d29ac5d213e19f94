// Package assets holds the embedded agent, command, and skill
// markdown shipped with the CLI.
//
// Content is embedded at compile time via go:embed so every
// distribution channel can install the assets without network access
// or extra files. The files under assets/ in the source tree are the
// canonical copies.
package assets

import "embed"

// FS contains all embedded asset markdown, keyed by
// {agents,commands,skills}/<name>.
//
//go:embed agents/*.md commands/*.md skills/*/SKILL.md
var FS embed.FS

// SkillFileName is the expected file name within a skill directory.
const SkillFileName = "SKILL.md"
