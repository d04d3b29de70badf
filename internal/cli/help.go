// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
)

// StyledHelpPrinter returns a kong help printer with lipgloss styling. It
// covers the selected command, or the application when none is selected.
func StyledHelpPrinter(title string) kong.HelpPrinter {
	return func(_ kong.HelpOptions, ctx *kong.Context) error {
		node := ctx.Selected()
		if node == nil {
			node = ctx.Model.Node
		}

		var sb strings.Builder

		sb.WriteString(Look.Heading.Render(title))
		sb.WriteString("\n")
		if help := nodeHelp(ctx, node); help != "" {
			sb.WriteString(Look.Hint.Render(help))
			sb.WriteString("\n")
		}

		sb.WriteString(Look.Section.Render("Usage:"))
		sb.WriteString("\n  ")
		sb.WriteString(usage(node))
		sb.WriteString("\n")

		if cmds := commands(node); len(cmds) > 0 {
			writeSection(&sb, "Commands:", cmds)
		}
		if args := arguments(node); len(args) > 0 {
			writeSection(&sb, "Arguments:", args)
		}
		if flags := flagEntries(node); len(flags) > 0 {
			writeSection(&sb, "Flags:", flags)
		}

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	}
}

type entry struct {
	name       string
	help       string
	defaultVal string
}

func nodeHelp(ctx *kong.Context, node *kong.Node) string {
	if node.Detail != "" {
		return node.Detail
	}
	if node.Help != "" {
		return node.Help
	}
	return ctx.Model.Node.Help
}

func usage(node *kong.Node) string {
	out := node.FullPath() + " [flags]"
	if node.Type == kong.ApplicationNode && len(node.Children) > 0 {
		out = node.Name + " <command> [flags]"
	}
	for _, arg := range node.Positional {
		out += " " + arg.Summary()
	}
	return out
}

func writeSection(sb *strings.Builder, title string, entries []entry) {
	sb.WriteString("\n")
	sb.WriteString(Look.Section.Render(title))
	sb.WriteString("\n")
	for _, e := range entries {
		sb.WriteString("  ")
		sb.WriteString(Look.Name.Render(e.name))
		if e.help != "" {
			sb.WriteString("  ")
			sb.WriteString(e.help)
		}
		if e.defaultVal != "" {
			sb.WriteString(" ")
			sb.WriteString(Look.Default.Render("(default: " + e.defaultVal + ")"))
		}
		sb.WriteString("\n")
	}
}

func commands(node *kong.Node) []entry {
	var out []entry
	for _, child := range node.Children {
		if child.Hidden || child.Type != kong.CommandNode {
			continue
		}
		out = append(out, entry{name: child.Name, help: child.Help})
	}
	return out
}

func arguments(node *kong.Node) []entry {
	var out []entry
	for _, arg := range node.Positional {
		out = append(out, entry{name: arg.Summary(), help: arg.Help})
	}
	return out
}

// flagEntries lists the flags of node and of every parent, the help flag
// first.
func flagEntries(node *kong.Node) []entry {
	out := []entry{{name: "-h, --help", help: "Show context-sensitive help."}}

	for _, group := range node.AllFlags(true) {
		for _, f := range group {
			if f.Name == "help" {
				continue
			}

			name := "--" + f.Name
			if f.Short != 0 {
				name = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
			}
			if !f.IsBool() && f.PlaceHolder != "" {
				name += "=" + strings.ToUpper(f.PlaceHolder)
			}

			e := entry{name: name, help: f.Help}
			if f.HasDefault {
				e.defaultVal = f.Default
			}
			out = append(out, e)
		}
	}
	return out
}
