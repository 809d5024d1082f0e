package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

var (
	digestProp = stringProp("Hex digest (md5, sha1, sha224, sha256, sha384 or sha512). The algorithm is inferred from its length.")
	matrixProp = map[string]interface{}{
		"type":        "string",
		"description": "Matricizer: nibble (one cell per hex digit) or randomart (drunken-bishop walk). Defaults to the configured matricizer.",
		"enum":        []string{"nibble", "randomart"},
	}
	paletteProp    = stringProp("Palette name, or \"auto\" to pick one from the digest. Defaults to the configured palette.")
	squareSizeProp = map[string]interface{}{
		"type":        "integer",
		"description": "Pixels per grid cell. Defaults to the configured square size.",
		"minimum":     1,
	}
)

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Classification
		{
			Name:        "colorhash_detect_algorithm",
			Description: "Identify the hash algorithm of a hex digest from its length, or normalize an algorithm name.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"input": stringProp("Hex digest or algorithm name"),
				},
				"required": []string{"input"},
			},
		},
		{
			Name:        "colorhash_matricize",
			Description: "Lay a digest out as a grid of 4-bit intensities and report the palette colors each cell maps to, without rendering an image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"digest":  digestProp,
					"matrix":  matrixProp,
					"palette": paletteProp,
				},
				"required": []string{"digest"},
			},
		},

		// Rendering
		{
			Name:        "colorhash_render_svg",
			Description: "Render a digest as a colored grid in SVG. Identical digests always produce identical pictures.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"digest":      digestProp,
					"matrix":      matrixProp,
					"palette":     paletteProp,
					"square_size": squareSizeProp,
				},
				"required": []string{"digest"},
			},
		},
		{
			Name:        "colorhash_render_png",
			Description: "Render a digest as a colored grid and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"digest":      digestProp,
					"matrix":      matrixProp,
					"palette":     paletteProp,
					"square_size": squareSizeProp,
				},
				"required": []string{"digest"},
			},
		},
		{
			Name:        "colorhash_render_ansi",
			Description: "Render a digest as 24-bit ANSI terminal output.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"digest":  digestProp,
					"matrix":  matrixProp,
					"palette": paletteProp,
				},
				"required": []string{"digest"},
			},
		},

		// Files and comparison
		{
			Name:        "colorhash_hash_file",
			Description: "Hash a file and render its fingerprint as SVG. Digests are cached per path and algorithm for the life of the server.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringProp("Absolute path to the file"),
					"algorithm": map[string]interface{}{
						"type":        "string",
						"description": "Hash algorithm. Defaults to the configured algorithm.",
						"enum":        []string{"md5", "sha1", "sha224", "sha256", "sha384", "sha512"},
					},
					"matrix":      matrixProp,
					"palette":     paletteProp,
					"square_size": squareSizeProp,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "colorhash_compare",
			Description: "Compare the fingerprints of two digests cell by cell and return a difference image. Use this to check visually whether two digests match.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"digest_a":    stringProp("First hex digest"),
					"digest_b":    stringProp("Second hex digest"),
					"matrix":      matrixProp,
					"palette":     paletteProp,
					"square_size": squareSizeProp,
				},
				"required": []string{"digest_a", "digest_b"},
			},
		},

		// Palettes
		{
			Name:        "colorhash_list_palettes",
			Description: "List the available palettes with their 16 colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"class": map[string]interface{}{
						"type":        "string",
						"description": "Only list palettes of this class",
						"enum":        []string{"gradient", "multicolor"},
					},
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
