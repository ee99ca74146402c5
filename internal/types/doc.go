/*
Package types defines core data structures shared across promptcli.

# Overview

The types package provides shared type definitions for:
  - Questionnaire files (QuestionSpec, Questionnaire)
  - Collected answers (Results)
  - Default-value providers (Default)
  - Answer history (HistoryEntry)

# Question Types

QuestionSpec:
  - One question definition from a YAML/JSON questionnaire
  - Type selects the prompt: number, input, secret, confirm
  - Number questions carry float/min/max/decimal_symbol options
  - Mandatory defaults to true when the file is silent

# Defaults

Default is a tagged provider, either:
  - DefaultValue(v): a literal default
  - DefaultFrom(fn): computed from the answers collected so far

Providers resolve exactly once, when their prompt is constructed, so a
computed default sees every answer given before its question and
nothing after.

# Results

Results maps question names to answered values. Value types are
mode-determined: int or float64 for number questions, string for
input/secret, bool for confirm, nil for a skipped question. The session
manager owns the live map and passes snapshots (Clone) to resolvers.

# Field Tags

QuestionSpec uses JSON and YAML tags so questionnaires can be written
in either format. The `omitempty` tag keeps serialized data clean.
*/
package types
