// Package docfmt собирает описание API из markdown-заметок.
//
// Каталог заметок содержит template.md (общая часть) и по одному файлу на
// версию вида 0.3.0.md. Итоговое описание состоит из шаблона, заметки текущей
// версии и списка ссылок на все версии, отдаваемые по /doc/<файл>.
package docfmt

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// TemplateFile — имя общего шаблона описания.
const TemplateFile = "template.md"

// URLPrefix — путь, по которому раздаются файлы заметок.
const URLPrefix = "/doc/"

// Format возвращает описание API для версии version из каталога dir.
func Format(dir, version string) (string, error) {
	const op = "docfmt.Format"

	tmpl, err := os.ReadFile(filepath.Join(dir, TemplateFile))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	notes, err := os.ReadFile(filepath.Join(dir, version+".md"))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	history, err := Versions(dir)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var b strings.Builder
	b.Write(tmpl)
	fmt.Fprintf(&b, "\n<h3>V%s changes</h3>\n", version)
	b.Write(notes)
	b.WriteString("\n<h3>History</h3>")
	links := make([]string, 0, len(history))
	for _, v := range history {
		links = append(links, fmt.Sprintf(`<div><a href="%s%s.md">%s</a></div>`, URLPrefix, v, v))
	}
	b.WriteString(strings.Join(links, "\n"))
	return b.String(), nil
}

// Versions возвращает версии, для которых в dir есть заметки, по возрастанию.
// Файлы с именами не вида x.y.z.md пропускаются.
func Versions(dir string) ([]string, error) {
	const op = "docfmt.Versions"

	matches, err := filepath.Glob(filepath.Join(dir, "*.*.*.md"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	versions := make([]string, 0, len(matches))
	for _, m := range matches {
		v := strings.TrimSuffix(filepath.Base(m), ".md")
		if semver.Canonical("v"+v) != "v"+v {
			continue
		}
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool {
		return semver.Compare("v"+versions[i], "v"+versions[j]) < 0
	})
	return versions, nil
}
