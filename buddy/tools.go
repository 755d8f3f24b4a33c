package buddy

import "github.com/openai/openai-go/v2"

const toolGetWeather = "get_weather"

// Temperature used when the weather collaborator is unavailable.
const fallbackTemperature = 25.0

// weatherTool is the single tool declared to the completion provider.
var weatherTool = openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
	Name:        toolGetWeather,
	Description: openai.String("Obtém a temperatura atual com base em latitude e longitude."),
	Parameters: openai.FunctionParameters{
		"type": "object",
		"properties": map[string]any{
			"latitude":  map[string]string{"type": "number"},
			"longitude": map[string]string{"type": "number"},
		},
		"required": []string{"latitude", "longitude"},
	},
})
