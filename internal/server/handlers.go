package server

import (
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ironsheep/colorhash-mcp/internal/digest"
	"github.com/ironsheep/colorhash-mcp/internal/fingerprint"
	"github.com/ironsheep/colorhash-mcp/internal/palette"
	"github.com/ironsheep/colorhash-mcp/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "colorhash_render_svg").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	logger := s.log.WithFields(log.Fields{"method": req.Method, "tool": params.Name})

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		logger.WithError(err).Warn("Tool execution failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	logger.Debug("Tool executed")

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies configured defaults for optional parameters
//  3. Builds the fingerprint (hashing files through the cache as needed)
//  4. Renders or summarizes it
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Classification
	case "colorhash_detect_algorithm":
		return s.handleDetectAlgorithm(args)
	case "colorhash_matricize":
		return s.handleMatricize(args)

	// Rendering
	case "colorhash_render_svg":
		return s.handleRenderSVG(args)
	case "colorhash_render_png":
		return s.handleRenderPNG(args)
	case "colorhash_render_ansi":
		return s.handleRenderANSI(args)

	// Files and comparison
	case "colorhash_hash_file":
		return s.handleHashFile(args)
	case "colorhash_compare":
		return s.handleCompare(args)

	// Palettes
	case "colorhash_list_palettes":
		return s.handleListPalettes(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments. Missing arguments leave v untouched.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// options fills unset matricizer and palette names from the configuration.
func (s *Server) options(matrix, paletteName string) fingerprint.Options {
	if matrix == "" {
		matrix = s.cfg.Matrix
	}
	if paletteName == "" {
		paletteName = s.cfg.Palette
	}
	return fingerprint.Options{
		Matrix:  matrix,
		Palette: paletteName,
		Catalog: s.catalog,
	}
}

func (s *Server) squareSize(v int) int {
	if v == 0 {
		return s.cfg.SquareSize
	}
	return v
}

// === Classification Handlers ===

type detectAlgorithmArgs struct {
	Input string `json:"input"`
}

type detectAlgorithmResult struct {
	Algorithm string `json:"algorithm"`
	HexLength int    `json:"hex_length"`
	ByteSize  int    `json:"byte_size"`
}

func (s *Server) handleDetectAlgorithm(args json.RawMessage) (interface{}, error) {
	var a detectAlgorithmArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	alg, err := digest.Parse(strings.TrimSpace(a.Input))
	if err != nil {
		return nil, err
	}
	return &detectAlgorithmResult{
		Algorithm: alg.String(),
		HexLength: alg.HexLen(),
		ByteSize:  alg.Size(),
	}, nil
}

type fingerprintArgs struct {
	Digest     string `json:"digest"`
	Matrix     string `json:"matrix"`
	Palette    string `json:"palette"`
	SquareSize int    `json:"square_size"`
}

func (s *Server) fingerprint(a fingerprintArgs) (*fingerprint.Fingerprint, error) {
	return fingerprint.FromHex(a.Digest, s.options(a.Matrix, a.Palette))
}

// matricizeResult describes a fingerprint without rendering it.
type matricizeResult struct {
	Algorithm  string     `json:"algorithm"`
	Digest     string     `json:"digest"`
	Matricizer string     `json:"matricizer"`
	Palette    string     `json:"palette"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Rows       []string   `json:"rows"`
	Colors     [][]string `json:"colors"`
}

func (s *Server) handleMatricize(args json.RawMessage) (interface{}, error) {
	var a fingerprintArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	fp, err := s.fingerprint(a)
	if err != nil {
		return nil, err
	}

	colors, err := fp.Colors()
	if err != nil {
		return nil, err
	}
	hexColors := make([][]string, len(colors))
	for y, row := range colors {
		hexColors[y] = make([]string, len(row))
		for x, c := range row {
			hexColors[y][x] = c.Hex()
		}
	}

	return &matricizeResult{
		Algorithm:  fp.Algorithm.String(),
		Digest:     fp.Hex(),
		Matricizer: fp.Matricizer,
		Palette:    fp.Palette.Name(),
		Width:      fp.Grid.Width,
		Height:     fp.Grid.Height,
		Rows:       strings.Split(fp.Grid.String(), "\n"),
		Colors:     hexColors,
	}, nil
}

// === Rendering Handlers ===

type svgResult struct {
	Algorithm  string `json:"algorithm"`
	Matricizer string `json:"matricizer"`
	Palette    string `json:"palette"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	SVG        string `json:"svg"`
}

func (s *Server) renderSVG(fp *fingerprint.Fingerprint, squareSize int) (*svgResult, error) {
	svg, err := render.SVG(fp.Grid, fp.Palette, squareSize)
	if err != nil {
		return nil, err
	}
	return &svgResult{
		Algorithm:  fp.Algorithm.String(),
		Matricizer: fp.Matricizer,
		Palette:    fp.Palette.Name(),
		Width:      fp.Grid.Width * squareSize,
		Height:     fp.Grid.Height * squareSize,
		SVG:        svg,
	}, nil
}

func (s *Server) handleRenderSVG(args json.RawMessage) (interface{}, error) {
	var a fingerprintArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	fp, err := s.fingerprint(a)
	if err != nil {
		return nil, err
	}
	return s.renderSVG(fp, s.squareSize(a.SquareSize))
}

func (s *Server) handleRenderPNG(args json.RawMessage) (interface{}, error) {
	var a fingerprintArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	fp, err := s.fingerprint(a)
	if err != nil {
		return nil, err
	}
	return render.EncodePNGBase64(fp.Grid, fp.Palette, s.squareSize(a.SquareSize))
}

type ansiResult struct {
	Palette string `json:"palette"`
	ANSI    string `json:"ansi"`
}

func (s *Server) handleRenderANSI(args json.RawMessage) (interface{}, error) {
	var a fingerprintArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	fp, err := s.fingerprint(a)
	if err != nil {
		return nil, err
	}
	out, err := render.ANSI(fp.Grid, fp.Palette)
	if err != nil {
		return nil, err
	}
	return &ansiResult{Palette: fp.Palette.Name(), ANSI: out}, nil
}

// === File and Comparison Handlers ===

type hashFileArgs struct {
	Path       string `json:"path"`
	Algorithm  string `json:"algorithm"`
	Matrix     string `json:"matrix"`
	Palette    string `json:"palette"`
	SquareSize int    `json:"square_size"`
}

type hashFileResult struct {
	Path   string `json:"path"`
	Digest string `json:"digest"`
	svgResult
}

func (s *Server) handleHashFile(args json.RawMessage) (interface{}, error) {
	var a hashFileArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	name := a.Algorithm
	if name == "" {
		name = s.cfg.Algorithm
	}
	var alg digest.Algorithm
	if err := alg.UnmarshalText([]byte(name)); err != nil {
		return nil, err
	}

	sum, err := s.cache.Sum(a.Path, alg)
	if err != nil {
		return nil, err
	}
	fp, err := fingerprint.FromDigest(alg, sum, s.options(a.Matrix, a.Palette))
	if err != nil {
		return nil, err
	}

	svg, err := s.renderSVG(fp, s.squareSize(a.SquareSize))
	if err != nil {
		return nil, err
	}
	return &hashFileResult{Path: a.Path, Digest: fp.Hex(), svgResult: *svg}, nil
}

type compareArgs struct {
	DigestA    string `json:"digest_a"`
	DigestB    string `json:"digest_b"`
	Matrix     string `json:"matrix"`
	Palette    string `json:"palette"`
	SquareSize int    `json:"square_size"`
}

func (s *Server) handleCompare(args json.RawMessage) (interface{}, error) {
	var a compareArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	opts := s.options(a.Matrix, a.Palette)

	fpA, err := fingerprint.FromHex(a.DigestA, opts)
	if err != nil {
		return nil, fmt.Errorf("digest_a: %w", err)
	}
	fpB, err := fingerprint.FromHex(a.DigestB, opts)
	if err != nil {
		return nil, fmt.Errorf("digest_b: %w", err)
	}
	return render.Compare(fpA.Subject(), fpB.Subject(), s.squareSize(a.SquareSize))
}

// === Palette Handlers ===

type listPalettesArgs struct {
	Class string `json:"class"`
}

type listPalettesResult struct {
	Count    int             `json:"count"`
	Palettes palette.Catalog `json:"palettes"`
}

func (s *Server) handleListPalettes(args json.RawMessage) (interface{}, error) {
	var a listPalettesArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	catalog := s.catalog
	if a.Class != "" {
		class, err := palette.ParseClass(a.Class)
		if err != nil {
			return nil, err
		}
		catalog = catalog.Filter(class)
	}
	if catalog == nil {
		catalog = palette.Catalog{}
	}
	return &listPalettesResult{Count: len(catalog), Palettes: catalog}, nil
}
