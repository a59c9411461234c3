package catalog

// courseSchemaJSON is the JSON Schema a custom course file must satisfy.
// It checks shape only; cross-cutting rules (unique lesson ids, exactly
// one correct choice, sequential world numbering) live in validateWorlds.
const courseSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["worlds"],
  "properties": {
    "worlds": {
      "type": "array",
      "items": { "$ref": "#/$defs/world" }
    }
  },
  "$defs": {
    "world": {
      "type": "object",
      "required": ["id", "name", "boss"],
      "properties": {
        "id": { "type": "integer", "minimum": 1 },
        "name": { "type": "string", "minLength": 1 },
        "description": { "type": "string" },
        "npc": { "type": "string" },
        "introText": { "type": "string" },
        "lessons": {
          "type": "array",
          "items": { "$ref": "#/$defs/lesson" }
        },
        "boss": { "$ref": "#/$defs/boss" }
      }
    },
    "lesson": {
      "type": "object",
      "required": ["id", "name", "xpReward", "category", "steps"],
      "properties": {
        "id": { "type": "string", "minLength": 1 },
        "name": { "type": "string", "minLength": 1 },
        "description": { "type": "string" },
        "xpReward": { "type": "integer", "minimum": 0 },
        "starReward": { "type": "integer", "minimum": 0 },
        "category": { "enum": ["code", "content", "config"] },
        "steps": {
          "type": "array",
          "minItems": 1,
          "items": { "$ref": "#/$defs/step" }
        }
      }
    },
    "step": {
      "type": "object",
      "required": ["type", "phase", "title"],
      "properties": {
        "type": { "enum": ["video", "image", "text", "interactive", "practice", "reflection"] },
        "phase": { "enum": ["experience", "reflection", "conceptualization", "experimentation"] },
        "title": { "type": "string", "minLength": 1 },
        "mediaFile": { "type": "string" },
        "mediaDescription": { "type": "string" },
        "watchPrompt": { "type": "string" },
        "content": { "type": "string" },
        "keyPoints": { "type": "array", "items": { "type": "string" } },
        "codeExample": { "type": "string" },
        "callouts": { "type": "array", "items": { "type": "string" } },
        "prompts": { "type": "array", "items": { "type": "string" } },
        "summary": { "type": "string" },
        "interactiveType": { "enum": ["sequence", "matching"] },
        "instructions": { "type": "string" },
        "items": { "type": "array", "items": { "type": "string" } },
        "pairs": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["left", "right"],
            "properties": {
              "left": { "type": "string" },
              "right": { "type": "string" }
            }
          }
        },
        "scenario": { "type": "string" },
        "question": { "type": "string" },
        "choices": {
          "type": "array",
          "items": { "$ref": "#/$defs/choice" }
        },
        "requiresCompletion": { "type": "boolean" }
      }
    },
    "boss": {
      "type": "object",
      "required": ["name", "hp", "questions"],
      "properties": {
        "name": { "type": "string", "minLength": 1 },
        "hp": { "type": "integer", "minimum": 1 },
        "xpReward": { "type": "integer", "minimum": 0 },
        "starReward": { "type": "integer", "minimum": 0 },
        "intro": { "type": "string" },
        "scenarioContext": { "type": "string" },
        "questions": {
          "type": "array",
          "minItems": 1,
          "items": { "$ref": "#/$defs/question" }
        }
      }
    },
    "question": {
      "type": "object",
      "required": ["text", "choices"],
      "properties": {
        "context": { "type": "string" },
        "text": { "type": "string", "minLength": 1 },
        "choices": {
          "type": "array",
          "minItems": 2,
          "items": { "$ref": "#/$defs/choice" }
        }
      }
    },
    "choice": {
      "type": "object",
      "required": ["text"],
      "properties": {
        "text": { "type": "string", "minLength": 1 },
        "correct": { "type": "boolean" },
        "feedback": { "type": "string" },
        "damage": { "type": "integer", "minimum": 0 }
      }
    }
  }
}`
