package main

import (
	"strconv"
	"strings"

	"places/internal/usecase"

	"github.com/pkg/errors"
)

// paramFlag collects repeated -param key=value pairs.
type paramFlag map[string]string

func (p paramFlag) String() string {
	pairs := make([]string, 0, len(p))
	for key, value := range p {
		pairs = append(pairs, key+"="+value)
	}

	return strings.Join(pairs, ",")
}

func (p paramFlag) Set(raw string) error {
	key, value, ok := strings.Cut(raw, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return errors.Errorf("parameter %q must look like key=value", raw)
	}
	p[key] = value

	return nil
}

// locationFlag collects repeated -location lat,lon[,pincode] values.
type locationFlag struct {
	values []usecase.IngestLocation
}

func (l *locationFlag) String() string {
	parts := make([]string, 0, len(l.values))
	for _, location := range l.values {
		parts = append(parts, strconv.FormatFloat(location.Latitude, 'f', -1, 64)+","+
			strconv.FormatFloat(location.Longitude, 'f', -1, 64))
	}

	return strings.Join(parts, " ")
}

func (l *locationFlag) Set(raw string) error {
	location, err := parseLocation(raw)
	if err != nil {
		return err
	}
	l.values = append(l.values, location)

	return nil
}

func parseLocation(raw string) (usecase.IngestLocation, error) {
	fields := strings.Split(raw, ",")
	if len(fields) < 2 || len(fields) > 3 {
		return usecase.IngestLocation{}, errors.Errorf("location %q must look like lat,lon[,pincode]", raw)
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil || latitude < -90 || latitude > 90 {
		return usecase.IngestLocation{}, errors.Errorf("invalid latitude in %q", raw)
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil || longitude < -180 || longitude > 180 {
		return usecase.IngestLocation{}, errors.Errorf("invalid longitude in %q", raw)
	}

	location := usecase.IngestLocation{Latitude: latitude, Longitude: longitude}
	if len(fields) == 3 {
		location.Pincode = strings.TrimSpace(fields[2])
	}

	return location, nil
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
