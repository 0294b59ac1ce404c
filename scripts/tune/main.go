// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command tune fits the engine's material values and piece-square
// tables against a scripts/datagen training set by texel tuning:
// gradient descent on the squared error between each position's
// sigmoid-scaled evaluation and the result of the game it came from.
// It renders the per-epoch training error as a line chart to
// error-plot.html as it goes.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"
)

func main() {
	if err := Main(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func Main() error {
	data := flag.String("data", "data.txt", "scripts/datagen training rows to fit against")
	epochs := flag.Int("epochs", 5000, "number of tuning epochs to run")
	batchSize := flag.Int("batch-size", 2*16384, "positions per gradient descent batch")
	rate := flag.Float64("learning-rate", 1, "initial learning rate")

	flag.Parse()

	fmt.Printf("loading dataset: %s\n", *data)
	dataset, err := NewDataset(*data)
	if err != nil {
		return err
	}
	fmt.Printf("dataset loaded: %d entries\n", len(dataset))

	tuner := NewTuner(Config{
		KPrecision: 10,

		ReportRate: 50,

		LearningRate:     *rate,
		LearningDropRate: 1,
		LearningStepRate: 250,

		MaxEpochs: *epochs,
		BatchSize: *batchSize,
	}, dataset)

	fmt.Println("tuner: computing optimal value of K")
	fmt.Printf("tuner: K = %v\n", tuner.ComputeK())

	tuner.Tune()
	tuner.Apply()

	for _, term := range tuner.Terms {
		fmt.Printf("%s: mg %d eg %d\n", term.Name, *term.MG, *term.EG)
	}

	return nil
}

// Tune runs the configured number of epochs of batched gradient
// descent, keeping per-term momentum and velocity accumulators so a
// noisy batch doesn't whipsaw the terms, and replotting the error
// curve after every epoch.
func (tuner *Tuner) Tune() {
	velocity := make(Vector, len(tuner.Terms))
	momentum := make(Vector, len(tuner.Terms))

	rate := tuner.Config.LearningRate
	scale := (tuner.K * 2) / float64(tuner.Config.BatchSize)

	E := tuner.ComputeE()
	fmt.Printf("tuner: E = %v\n", E)

	errorName := []string{"0"}
	errorData := []opts.LineData{{Value: E}}
	plotError(errorName, errorData)

	batches := (len(tuner.Dataset) + tuner.Config.BatchSize - 1) / tuner.Config.BatchSize

	for epoch := 0; epoch < tuner.Config.MaxEpochs; epoch++ {
		fmt.Printf("tuner: started new epoch (%d/%d)\n", epoch+1, tuner.Config.MaxEpochs)

		progressBar := progressbar.NewOptions(
			batches,
			progressbar.OptionSetElapsedTime(true),
			progressbar.OptionSetItsString("batch"),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
		)

		for tuner.Batch = 0; tuner.Batch < batches; tuner.Batch++ {
			tuner.Gradient = make(Vector, len(tuner.Terms))
			tuner.ComputeGradient()

			for i := range tuner.Terms {
				mgGradient := tuner.Gradient[i][MG] * scale
				egGradient := tuner.Gradient[i][EG] * scale

				momentum[i][MG] = momentum[i][MG]*0.9 + mgGradient*0.1
				momentum[i][EG] = momentum[i][EG]*0.9 + egGradient*0.1

				velocity[i][MG] = velocity[i][MG]*0.999 + mgGradient*mgGradient*0.001
				velocity[i][EG] = velocity[i][EG]*0.999 + egGradient*egGradient*0.001

				tuner.Delta[i][MG] += momentum[i][MG] * rate / math.Sqrt(1e-8+velocity[i][MG])
				tuner.Delta[i][EG] += momentum[i][EG] * rate / math.Sqrt(1e-8+velocity[i][EG])
			}

			_ = progressBar.Add(1)
		}

		_ = progressBar.Close()

		E := tuner.ComputeE()
		fmt.Printf("tuner: E = %v\n", E)

		errorName = append(errorName, strconv.Itoa(epoch+1))
		errorData = append(errorData, opts.LineData{Value: E})
		plotError(errorName, errorData)

		if epoch != 0 {
			if epoch%tuner.Config.LearningStepRate == 0 {
				rate /= tuner.Config.LearningDropRate
			}

			if epoch%tuner.Config.ReportRate == 0 {
				fmt.Printf("%#v\n", tuner.Delta)
			}
		}
	}
}

// plotError rewrites error-plot.html with the error curve so far; the
// chart is refreshed in place every epoch rather than only at the end,
// so an unpromising run can be spotted and killed early.
func plotError(names []string, data []opts.LineData) {
	errorPlot := charts.NewLine()
	errorPlot.SetXAxis(names).AddSeries("Error", data)

	plotFile, err := os.Create("error-plot.html")
	if err != nil {
		return
	}
	defer plotFile.Close()

	_ = errorPlot.Render(plotFile)
}
