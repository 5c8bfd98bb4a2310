// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"encoding/json"
	"fmt"
	"os"
)

// analysisResult mirrors the JSON shape produced by the upstream
// document-analysis service. Field names follow the service's API, not Go
// conventions.
type analysisResult struct {
	Text          string           `json:"text"`
	Pages         []analysisPage   `json:"pages"`
	Languages     []analysisLang   `json:"languages"`
	Styles        []analysisStyle  `json:"styles"`
	KeyValuePairs []analysisKVPair `json:"keyValuePairs"`
}

type analysisPage struct {
	PageNumber int            `json:"pageNumber"`
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	Unit       string         `json:"unit"`
	Words      []analysisWord `json:"words"`
	Lines      []analysisLine `json:"lines"`
}

type analysisWord struct {
	Content string `json:"content"`
}

type analysisLine struct {
	Content string    `json:"content"`
	Polygon []float64 `json:"polygon"`
}

type analysisLang struct {
	Locale string `json:"locale"`
}

type analysisStyle struct {
	IsHandwritten bool    `json:"isHandwritten"`
	Confidence    float64 `json:"confidence"`
}

type analysisKVPair struct {
	Key   analysisSpan `json:"key"`
	Value analysisSpan `json:"value"`
}

type analysisSpan struct {
	Content string    `json:"content"`
	Polygon []float64 `json:"polygon"`
}

// ParseAnalysis converts a document-analysis service response into a
// Content. Missing sections degrade to empty sequences rather than errors.
func ParseAnalysis(data []byte) (*Content, error) {
	var result analysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing analysis result: %w", err)
	}

	content := NewContent(result.Text)

	for _, p := range result.Pages {
		page := Page{
			Number:    p.PageNumber,
			Width:     p.Width,
			Height:    p.Height,
			Unit:      p.Unit,
			WordCount: len(p.Words),
		}
		for _, l := range p.Lines {
			page.Lines = append(page.Lines, Line{
				Content:     l.Content,
				BoundingBox: l.Polygon,
			})
		}
		content.Pages = append(content.Pages, page)
	}

	for _, lang := range result.Languages {
		if lang.Locale != "" {
			content.Languages = append(content.Languages, lang.Locale)
		}
	}

	for _, s := range result.Styles {
		content.Styles = append(content.Styles, StyleRun{
			IsHandwritten: s.IsHandwritten,
			Confidence:    s.Confidence,
		})
	}

	for _, kv := range result.KeyValuePairs {
		content.KeyValuePairs = append(content.KeyValuePairs, KeyValuePair{
			Key:   TextSpan{Text: kv.Key.Content, BoundingBox: kv.Key.Polygon},
			Value: TextSpan{Text: kv.Value.Content, BoundingBox: kv.Value.Polygon},
		})
	}

	return content, nil
}

// LoadAnalysisFile reads a document-analysis result from a JSON file.
func LoadAnalysisFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading analysis file: %w", err)
	}
	return ParseAnalysis(data)
}
