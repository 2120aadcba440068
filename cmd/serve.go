package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/barscribe/bar"
	"github.com/jsphweid/barscribe/constants"
	"github.com/jsphweid/barscribe/instrument"
	"github.com/jsphweid/barscribe/midi"
	"github.com/jsphweid/barscribe/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

// request bodies larger than this are rejected
const maxBodyBytes = 1 << 20

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the parser over HTTP",
	Long:  `Serves POST /parse, POST /export and GET /instruments on PORT`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	reqBody, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("could not read request body: %w", err)
	}
	if err := json.Unmarshal(reqBody, v); err != nil {
		return fmt.Errorf("could not unmarshal request body: %w", err)
	}
	return nil
}

func toParseResponse(bars []*bar.Bar) model.ParseResponse {
	res := model.ParseResponse{Bars: make([]model.BarResult, 0, len(bars))}
	for _, b := range bars {
		br := model.BarResult{
			Key:        b.Key,
			Meter:      b.Meter.String(),
			Full:       b.IsFull(),
			Placements: make([]model.PlacementResult, 0, b.Len()),
		}
		for _, p := range b.Placements {
			pr := model.PlacementResult{Beat: p.Beat, Duration: p.Duration, Rest: p.IsRest()}
			if !p.IsRest() {
				pr.Note = p.Note.String()
				// keys outside 0-127 are left out
				pr.MidiKey, _ = p.Note.MidiKey()
			}
			br.Placements = append(br.Placements, pr)
		}
		res.Bars = append(res.Bars, br)
	}
	return res
}

func HandleParse(w http.ResponseWriter, r *http.Request) {
	var input model.ParseRequestBody
	if err := readJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if input.Meter == "" {
		input.Meter = bar.CommonTime.String()
	}

	bars, err := parseNotation(input.Notation, input.Language, input.Key, input.Meter)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, toParseResponse(bars))
}

func HandleExport(w http.ResponseWriter, r *http.Request) {
	var input model.Tune
	if err := readJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(input.Parts) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("tune %q has no parts", input.Title))
		return
	}

	s, err := tuneToSMF(input, 0, 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	dat, err := midi.Encode(s)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.Write(dat)
}

func HandleInstruments(w http.ResponseWriter, r *http.Request) {
	res := make([]model.InstrumentResult, 0, 128)
	for _, i := range instrument.AllMidiInstrs() {
		res = append(res, model.InstrumentResult{Program: uint8(i), Name: i.String()})
	}
	writeJSON(w, res)
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/parse", HandleParse).Methods("POST")
	router.HandleFunc("/export", HandleExport).Methods("POST")
	router.HandleFunc("/instruments", HandleInstruments).Methods("GET")
	return cors.Default().Handler(router)
}

func serve() {
	addr := ":" + constants.GetPort()
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, NewRouter()))
}
