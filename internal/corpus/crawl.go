// Package corpus extracts the raw link structure from a directory of
// HTML documents. It is the thin collaborator feeding the graph
// builder: it knows how to find hrefs in files, nothing about ranking.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// hrefPattern matches the target of anchor tags. Deliberately crude:
// the corpus format is plain static HTML and a full parser buys nothing
// here.
var hrefPattern = regexp.MustCompile(`<a\s+(?:[^>]*?)href="([^"]*)"`)

// Crawl scans dir for .html files and returns a mapping from each
// filename to the list of link targets found in it, sorted and
// deduplicated, with self-references removed. Targets are returned raw;
// filtering out links that point outside the corpus is the graph
// builder's job.
func Crawl(dir string) (map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory: %w", err)
	}

	pages := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".html" {
			continue
		}
		contents, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		pages[entry.Name()] = extractLinks(entry.Name(), contents)
	}
	return pages, nil
}

// extractLinks pulls href targets out of an HTML document, dropping
// self-references and duplicates.
func extractLinks(name string, contents []byte) []string {
	seen := make(map[string]bool)
	for _, match := range hrefPattern.FindAllSubmatch(contents, -1) {
		target := string(match[1])
		if target == name {
			continue
		}
		seen[target] = true
	}
	links := make([]string, 0, len(seen))
	for target := range seen {
		links = append(links, target)
	}
	sort.Strings(links)
	return links
}
