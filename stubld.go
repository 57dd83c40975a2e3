package main

import (
	"fmt"
	"os"
	"strings"

	"stubld/pkg/linker"
	"stubld/pkg/utils"
)

func main() {
	ctx := linker.NewContext(linker.StderrSink{})
	remaining := parseArgs(ctx)

	if len(remaining) == 0 {
		utils.Fatal("no input files")
	}

	if err := linker.ReadInputFiles(ctx, remaining); err != nil {
		utils.Fatal(err)
	}

	fmt.Printf("emulation: %s\n", linker.MachineTypeStringer{MachineType: ctx.Args.Emulation})

	for _, script := range ctx.Scripts {
		fmt.Printf("script %s:\n", script.Path)
		for _, entry := range script.Entries {
			mark := "needed"
			if !entry.Needed {
				mark = "as-needed"
			}
			fmt.Printf("\t%s (%s)\n", entry.Name, mark)
		}
	}

	for _, obj := range ctx.Objs {
		fmt.Printf("object %s: %d sections, %d symbols\n",
			obj.File.Name, len(obj.Sections), len(obj.SymTable))
	}
}

func parseArgs(ctx *linker.Context) []string {
	args := os.Args[1:]
	var remaining []string

	readArg := func(opt string) string {
		if len(args) == 0 {
			utils.Fatal(fmt.Sprintf("option -%s: missing argument", opt))
		}
		arg := args[0]
		args = args[1:]
		return arg
	}

	for len(args) > 0 {
		arg := args[0]
		args = args[1:]

		switch {
		case arg == "-o":
			ctx.Args.Output = readArg("o")
		case arg == "-m":
			switch em := readArg("m"); em {
			case "elf_x86_64":
				ctx.Args.Emulation = linker.MachineTypeX86_64
			case "aarch64linux":
				ctx.Args.Emulation = linker.MachineTypeAArch64
			default:
				utils.Fatal(fmt.Sprintf("unknown -m argument: %s", em))
			}
		case arg == "-L":
			ctx.Args.LibraryPaths = append(ctx.Args.LibraryPaths, readArg("L"))
		case strings.HasPrefix(arg, "-L"):
			ctx.Args.LibraryPaths = append(ctx.Args.LibraryPaths, strings.TrimPrefix(arg, "-L"))
		default:
			remaining = append(remaining, arg)
		}
	}
	return remaining
}
