// Package apitester loads Postman collections and executes their requests
// against the live API.
package apitester

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"places/config"
	"places/internal/domain/entity"
	domainerrors "places/internal/domain/errors"
	"places/internal/domain/service"
	"places/internal/errors"
)

// CollectionSuffix identifies collection files in the collections directory.
const CollectionSuffix = ".postman_collection.json"

var (
	pathParamPattern = regexp.MustCompile(`\{([^{}]+)\}`)

	bodyMethods = map[string]bool{"POST": true, "PUT": true, "PATCH": true}

	// categorySuffixes are stripped from collection names, longest first.
	categorySuffixes = []string{" APIs", " API", " Copy"}
)

// Loader reads collections from a directory on disk.
type Loader struct {
	dir         string
	substituter *Substituter
}

var _ service.CollectionLoader = (*Loader)(nil)

// NewLoader creates a Loader for the configured collections directory.
func NewLoader(cfg *config.Config) *Loader {
	return NewLoaderForDir(cfg.APITester.CollectionsDir, NewSubstituter(cfg.APITester.BaseURL))
}

// NewLoaderForDir creates a Loader for dir.
func NewLoaderForDir(dir string, substituter *Substituter) *Loader {
	return &Loader{dir: dir, substituter: substituter}
}

// ListCollections returns the collection file names, sorted. A missing
// directory yields an empty list.
func (l *Loader) ListCollections(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}

		return nil, errors.Wrapf(err, "failed to list collections in %s", l.dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), CollectionSuffix) {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)

	return names, nil
}

// LoadCollection parses one collection file from the directory.
func (l *Loader) LoadCollection(_ context.Context, name string) (*entity.Collection, error) {
	if name == "" || filepath.Base(name) != name {
		return nil, domainerrors.ErrCollectionNotFound.WrapMessage(name)
	}

	data, err := os.ReadFile(filepath.Join(l.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domainerrors.ErrCollectionNotFound.WrapMessage(name)
		}

		return nil, errors.Wrapf(err, "failed to read collection %s", name)
	}

	return ParseCollection(data, name, l.substituter)
}

// ParseCollection turns Postman v2 JSON into endpoints grouped by category.
func ParseCollection(data []byte, fileName string, substituter *Substituter) (*entity.Collection, error) {
	var raw postmanCollection
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, domainerrors.ErrInvalidCollection.WrapMessage(fmt.Sprintf("%s: %v", fileName, err))
	}

	name := strings.TrimSpace(raw.Info.Name)
	if name == "" {
		name = strings.TrimSuffix(fileName, CollectionSuffix)
	}

	collection := &entity.Collection{
		Name:      name,
		File:      fileName,
		Endpoints: map[string][]*entity.Endpoint{},
		Variables: map[string]string{},
	}

	// Variables may be declared on any folder; gather them before substituting.
	addVariables(collection.Variables, raw.Variable)
	for _, item := range raw.Item {
		collectItemVariables(collection.Variables, item)
	}

	root := CategoryFromName(name)
	parser := &itemParser{vars: collection.Variables, substituter: substituter, endpoints: collection.Endpoints}
	for _, item := range raw.Item {
		parser.walk(item, root)
	}

	return collection, nil
}

// CategoryFromName strips the " API", " APIs" and " Copy" suffixes from a collection name.
func CategoryFromName(name string) string {
	for _, suffix := range categorySuffixes {
		name = strings.ReplaceAll(name, suffix, "")
	}

	return strings.TrimSpace(name)
}

func addVariables(dst map[string]string, vars []postmanVariable) {
	for _, v := range vars {
		if v.Key == "" {
			continue
		}
		dst[v.Key] = v.stringValue()
	}
}

func collectItemVariables(dst map[string]string, item postmanItem) {
	addVariables(dst, item.Variable)
	for _, child := range item.Item {
		collectItemVariables(dst, child)
	}
}

type itemParser struct {
	vars        map[string]string
	substituter *Substituter
	endpoints   map[string][]*entity.Endpoint
}

// walk descends folders, joining folder names onto the category with " - ".
func (p *itemParser) walk(item postmanItem, category string) {
	name := item.Name
	if name == "" {
		name = "Unnamed Item"
	}

	if item.Item != nil {
		sub := category + " - " + name
		for _, child := range item.Item {
			p.walk(child, sub)
		}

		return
	}

	if item.Request == nil {
		return
	}

	endpoint := p.parseRequest(item, category)
	p.endpoints[endpoint.Category] = append(p.endpoints[endpoint.Category], endpoint)
}

func (p *itemParser) parseRequest(item postmanItem, category string) *entity.Endpoint {
	request := item.Request

	name := item.Name
	if name == "" {
		name = "Unnamed Endpoint"
	}
	description := string(item.Description)
	if description == "" {
		description = string(request.Description)
	}

	method := strings.ToUpper(strings.TrimSpace(request.Method))
	if method == "" {
		method = "GET"
	}

	url := p.substituter.Substitute(request.URL.Raw, p.vars)

	headers := map[string]string{}
	for _, header := range request.Header {
		if header.Disabled || header.Key == "" || header.Value == "" {
			continue
		}
		headers[header.Key] = p.substituter.Substitute(header.Value, p.vars)
	}

	query := map[string]string{}
	for _, param := range slices.Concat(request.URL.Query, request.Query) {
		if param.Disabled || param.Key == "" || param.Value == "" {
			continue
		}
		query[param.Key] = p.substituter.Substitute(param.Value, p.vars)
	}

	var body map[string]any
	if bodyMethods[method] && request.Body != nil && request.Body.Mode == "raw" {
		body = parseRawBody(p.substituter.Substitute(request.Body.Raw, p.vars))
	}

	return &entity.Endpoint{
		Name:           name,
		Method:         method,
		URL:            url,
		Description:    description,
		Category:       category,
		Headers:        headers,
		QueryParams:    query,
		BodyParams:     body,
		RequiredParams: RequiredParams(url),
	}
}

// parseRawBody decodes a JSON object body; anything else is kept under "raw_data".
func parseRawBody(raw string) map[string]any {
	if strings.TrimSpace(raw) == "" {
		raw = "{}"
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(raw), &body); err != nil || body == nil {
		return map[string]any{"raw_data": raw}
	}

	return body
}

// RequiredParams returns the distinct {param} tokens of a URL template in order.
func RequiredParams(url string) []string {
	matches := pathParamPattern.FindAllStringSubmatch(url, -1)
	params := make([]string, 0, len(matches))
	for _, match := range matches {
		if !slices.Contains(params, match[1]) {
			params = append(params, match[1])
		}
	}

	return params
}
