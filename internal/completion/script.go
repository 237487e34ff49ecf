package completion

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"join": strings.Join,
}

var bashTemplate = template.Must(template.New("bash").Funcs(funcs).Parse(`# bash completion for lazycode
_lazycode() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    case "$prev" in
{{- range .Flags}}{{if .HasValue}}
        --{{.Name}}{{if .Short}}|-{{.Short}}{{end}})
{{- if .Values}}
            COMPREPLY=($(compgen -W "{{join .Values " "}}" -- "$cur"))
{{- else}}
            COMPREPLY=($(compgen -f -- "$cur"))
{{- end}}
            return ;;
{{- end}}{{end}}
        completion)
            COMPREPLY=($(compgen -W "{{join .Shells " "}}" -- "$cur"))
            return ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=($(compgen -W "{{range .Flags}}--{{.Name}} {{end}}" -- "$cur"))
        return
    fi
    COMPREPLY=($(compgen -W "{{join .Subcommands " "}}" -d -- "$cur"))
}
complete -F _lazycode lazycode
`))

var zshTemplate = template.Must(template.New("zsh").Funcs(funcs).Parse(`#compdef lazycode

_lazycode() {
    _arguments -s \
{{- range .Flags}}
        '--{{.Name}}[{{.Description}}]{{if .HasValue}}:{{.ValueHint}}:{{if .Values}}({{join .Values " "}}){{else}}_files{{end}}{{end}}' \
{{- end}}
        '1: :((tree\:"print the workspace tree" completion\:"generate a completion script"))' \
        '*:workspace:_files -/'
}

compdef _lazycode lazycode
`))

var fishTemplate = template.Must(template.New("fish").Funcs(funcs).Parse(`# fish completion for lazycode
complete -c lazycode -n '__fish_use_subcommand' -a '{{join .Subcommands " "}}'
complete -c lazycode -n '__fish_seen_subcommand_from completion' -a '{{join .Shells " "}}'
{{- range .Flags}}
complete -c lazycode -l {{.Name}}{{if .Short}} -s {{.Short}}{{end}}{{if .HasValue}} -r{{end}}{{if .Values}} -a '{{join .Values " "}}'{{end}} -d '{{.Description}}'
{{- end}}
`))

type scriptData struct {
	Flags       []FlagInfo
	Subcommands []string
	Shells      []string
}

// Write renders the completion script for shell.
func Write(w io.Writer, shell string) error {
	var tmpl *template.Template
	switch shell {
	case "bash":
		tmpl = bashTemplate
	case "zsh":
		tmpl = zshTemplate
	case "fish":
		tmpl = fishTemplate
	default:
		return fmt.Errorf("unsupported shell: %s (supported: %s)", shell, strings.Join(Shells, ", "))
	}
	return tmpl.Execute(w, scriptData{
		Flags:       GetFlags(),
		Subcommands: Subcommands,
		Shells:      Shells,
	})
}
