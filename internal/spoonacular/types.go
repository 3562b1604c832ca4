package spoonacular

import "encoding/json"

// SearchRequest is one of ByIngredients or ByTitle.
type SearchRequest interface {
	isSearchRequest()
}

// ByIngredients searches recipes that use the given ingredients.
type ByIngredients struct {
	Ingredients []string
}

// ByTitle searches recipes by free text.
type ByTitle struct {
	Title string
}

func (ByIngredients) isSearchRequest() {}
func (ByTitle) isSearchRequest()       {}

type Equipment struct {
	ID            int64  `json:"id,omitempty"`
	Name          string `json:"name"`
	LocalizedName string `json:"localizedName,omitempty"`
	Image         string `json:"image"`
}

// AnalyzedInstruction is one instruction set. Steps are passed through
// to clients unchanged.
type AnalyzedInstruction struct {
	Name  string            `json:"name"`
	Steps []json.RawMessage `json:"steps"`
}

// FirstSteps returns the steps of the first instruction set, or nil.
func FirstSteps(instructions []AnalyzedInstruction) []json.RawMessage {
	if len(instructions) == 0 {
		return nil
	}
	return instructions[0].Steps
}

// Recipe is a raw record from the bulk information endpoint. Only the
// fields used by the dashboard projections are decoded; nested ingredient
// and step objects stay raw so no upstream field is lost.
type Recipe struct {
	ID                    int64                 `json:"id"`
	Image                 string                `json:"image"`
	ImageType             string                `json:"imageType"`
	AggregateLikes        int64                 `json:"aggregateLikes"`
	MissedIngredientCount int                   `json:"missedIngredientCount"`
	MissedIngredients     []json.RawMessage     `json:"missedIngredients"`
	Title                 string                `json:"title"`
	UnusedIngredients     []json.RawMessage     `json:"unusedIngredients"`
	UsedIngredientCount   int                   `json:"usedIngredientCount"`
	ReadyInMinutes        int                   `json:"readyInMinutes"`
	Summary               string                `json:"summary"`
	ExtendedIngredients   []json.RawMessage     `json:"extendedIngredients"`
	AnalyzedInstructions  []AnalyzedInstruction `json:"analyzedInstructions"`
}

type complexSearchResponse struct {
	Results []json.RawMessage `json:"results"`
}

type equipmentWidgetResponse struct {
	Equipment []Equipment `json:"equipment"`
}
