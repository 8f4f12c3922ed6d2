package server

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/wheelibin/ledpanel/internal/models"
)

type StripsResponse struct {
	Body struct {
		Strips []models.Strip `json:"strips" doc:"Configured strips"`
	}
}

type SelectionRequest struct {
	Body struct {
		Mode string `json:"mode" enum:"all,none,ids" doc:"Select every strip, no strip or the listed ids"`
		IDs  []int  `json:"ids,omitempty" doc:"Strip ids, used with mode ids"`
	}
}

type StripInput struct {
	ID int `path:"id" doc:"Strip id"`
}

type ConfigResponse struct {
	Body models.DeviceConfig
}

type SaveConfigRequest struct {
	ID   int `path:"id" doc:"Strip id"`
	Body models.DeviceConfig
}

type NamedInput struct {
	ID   int    `path:"id" doc:"Strip id"`
	Name string `path:"name" doc:"Script or scene name"`
}

type TextResponse struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type SaveTextRequest struct {
	ID      int    `path:"id" doc:"Strip id"`
	Name    string `path:"name" doc:"Script or scene name"`
	RawBody []byte `contentType:"text/plain" doc:"Script or scene text"`
}

type ColorRequest struct {
	Body struct {
		Hue        int     `json:"hue" minimum:"0" maximum:"359" doc:"Html hue"`
		Saturation float64 `json:"saturation" minimum:"0" maximum:"100"`
		Lightness  float64 `json:"lightness" minimum:"0" maximum:"100"`
	}
}

type WhiteRequest struct {
	Body struct {
		Lightness float64 `json:"lightness" minimum:"0" maximum:"100"`
	}
}

type PreviewRequest struct {
	Body struct {
		Scene    string          `json:"scene" doc:"Command list, one kind,start,end,startValue,endValue,zoom,speed; per line"`
		LedCount int             `json:"ledCount,omitempty" doc:"Number of leds, defaults to the selected strip"`
		Channels *models.Channels `json:"channels,omitempty" doc:"Enabled channels, defaults to all"`
	}
}

type PreviewResponse struct {
	Body struct {
		Leds   []models.LED `json:"leds"`
		Errors string       `json:"errors,omitempty" doc:"Commands that could not be parsed"`
	}
}

// RegisterRoutes adds the panel endpoints to api
func RegisterRoutes(api huma.API, panel panelService) {

	huma.Register(api, huma.Operation{
		OperationID: "list-strips",
		Method:      http.MethodGet,
		Path:        "/api/strips",
		Summary:     "List strips",
		Tags:        []string{"strips"},
	}, func(ctx context.Context, input *struct{}) (*StripsResponse, error) {
		strips, err := panel.ListStrips()
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to read strips", err)
		}
		resp := &StripsResponse{}
		resp.Body.Strips = strips
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "select-strips",
		Method:      http.MethodPost,
		Path:        "/api/strips/selection",
		Summary:     "Select strips",
		Tags:        []string{"strips"},
		Errors:      []int{400, 404},
	}, func(ctx context.Context, input *SelectionRequest) (*StripsResponse, error) {
		var err error
		switch input.Body.Mode {
		case "all":
			err = panel.SelectAll(ctx)
		case "none":
			err = panel.SelectNone(ctx)
		case "ids":
			err = panel.SelectStrips(ctx, input.Body.IDs)
		default:
			return nil, huma.Error400BadRequest("Unknown selection mode")
		}
		if err != nil {
			return nil, toHumaError("Failed to select strips", err)
		}
		strips, err := panel.ListStrips()
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to read strips", err)
		}
		resp := &StripsResponse{}
		resp.Body.Strips = strips
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-strip-config",
		Method:      http.MethodGet,
		Path:        "/api/strips/{id}/config",
		Summary:     "Get strip config",
		Tags:        []string{"strips"},
		Errors:      []int{404, 502},
	}, func(ctx context.Context, input *StripInput) (*ConfigResponse, error) {
		cfg, err := panel.GetConfig(ctx, input.ID)
		if err != nil {
			return nil, toHumaError("Failed to read config", err)
		}
		return &ConfigResponse{Body: cfg}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "save-strip-config",
		Method:      http.MethodPost,
		Path:        "/api/strips/{id}/config",
		Summary:     "Save strip config",
		Tags:        []string{"strips"},
		Errors:      []int{404, 409, 502},
	}, func(ctx context.Context, input *SaveConfigRequest) (*struct{}, error) {
		if err := panel.SaveConfig(ctx, input.ID, input.Body); err != nil {
			return nil, toHumaError("Failed to save config", err)
		}
		return &struct{}{}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-strip-script",
		Method:      http.MethodGet,
		Path:        "/api/strips/{id}/scripts/{name}",
		Summary:     "Get script",
		Tags:        []string{"scripts"},
		Errors:      []int{404, 502},
	}, func(ctx context.Context, input *NamedInput) (*TextResponse, error) {
		text, err := panel.GetScript(ctx, input.ID, input.Name)
		if err != nil {
			return nil, toHumaError("Failed to read script", err)
		}
		return &TextResponse{ContentType: "text/plain", Body: []byte(text)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "save-strip-script",
		Method:      http.MethodPost,
		Path:        "/api/strips/{id}/scripts/{name}",
		Summary:     "Save script",
		Tags:        []string{"scripts"},
		Errors:      []int{404, 409, 502},
	}, func(ctx context.Context, input *SaveTextRequest) (*struct{}, error) {
		if err := panel.SaveScript(ctx, input.ID, input.Name, string(input.RawBody)); err != nil {
			return nil, toHumaError("Failed to save script", err)
		}
		return &struct{}{}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-strip-scene",
		Method:      http.MethodGet,
		Path:        "/api/strips/{id}/scenes/{name}",
		Summary:     "Get scene",
		Tags:        []string{"scenes"},
		Errors:      []int{404, 502},
	}, func(ctx context.Context, input *NamedInput) (*TextResponse, error) {
		text, err := panel.GetScene(ctx, input.ID, input.Name)
		if err != nil {
			return nil, toHumaError("Failed to read scene", err)
		}
		return &TextResponse{ContentType: "text/plain", Body: []byte(text)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "save-strip-scene",
		Method:      http.MethodPost,
		Path:        "/api/strips/{id}/scenes/{name}",
		Summary:     "Save scene",
		Tags:        []string{"scenes"},
		Errors:      []int{404, 409, 502},
	}, func(ctx context.Context, input *SaveTextRequest) (*struct{}, error) {
		if err := panel.SaveScene(ctx, input.ID, input.Name, string(input.RawBody)); err != nil {
			return nil, toHumaError("Failed to save scene", err)
		}
		return &struct{}{}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "set-color",
		Method:      http.MethodPost,
		Path:        "/api/std/color",
		Summary:     "Set selected strips to a colour",
		Tags:        []string{"std"},
		Errors:      []int{409, 502},
	}, func(ctx context.Context, input *ColorRequest) (*struct{}, error) {
		if err := panel.SetColor(ctx, input.Body.Hue, input.Body.Saturation, input.Body.Lightness); err != nil {
			return nil, toHumaError("Failed to set color", err)
		}
		return &struct{}{}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "set-white",
		Method:      http.MethodPost,
		Path:        "/api/std/white",
		Summary:     "Set selected strips to white",
		Tags:        []string{"std"},
		Errors:      []int{409, 502},
	}, func(ctx context.Context, input *WhiteRequest) (*struct{}, error) {
		if err := panel.SetWhite(ctx, input.Body.Lightness); err != nil {
			return nil, toHumaError("Failed to set white", err)
		}
		return &struct{}{}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "set-off",
		Method:      http.MethodPost,
		Path:        "/api/std/off",
		Summary:     "Turn selected strips off",
		Tags:        []string{"std"},
		Errors:      []int{409, 502},
	}, func(ctx context.Context, input *struct{}) (*struct{}, error) {
		if err := panel.SetOff(ctx); err != nil {
			return nil, toHumaError("Failed to turn off", err)
		}
		return &struct{}{}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "preview-scene",
		Method:      http.MethodPost,
		Path:        "/api/preview",
		Summary:     "Evaluate a command list",
		Tags:        []string{"scenes"},
	}, func(ctx context.Context, input *PreviewRequest) (*PreviewResponse, error) {
		channels := models.AllChannels()
		if input.Body.Channels != nil {
			channels = *input.Body.Channels
		}
		leds, err := panel.Preview(input.Body.Scene, input.Body.LedCount, channels)
		resp := &PreviewResponse{}
		resp.Body.Leds = leds
		if err != nil {
			resp.Body.Errors = err.Error()
		}
		return resp, nil
	})
}
