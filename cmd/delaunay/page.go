package main

import "html/template"

type pageParams struct {
	Sites      int
	MaxSites   int
	Seed       int64
	HalfExtent float64
	Rejected   int
}

var pageHead = template.Must(template.New("head").Parse(`
    <!DOCTYPE html>
    <html>
    <head>
        <title>Voronoi diagram</title>
		<style>
			body {
				background-color: #1F1F1F;
				color: #d3d3d3;
				font-family: Consolas, monospace;
				overflow: hidden;
			}

			#container {
				display: flex;
				width: 100%;
				height: 100vh;
				box-sizing: border-box;
			}

			#left-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
			}

			#right-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
				border-left: 5px solid #757575;
				overflow-y: auto;
				overflow-x: auto;
				background-color: #1e1e1e;
			}

			#logs {
				white-space: pre-wrap;
				word-wrap: break-word;
				color: #d3d3d3;
				font-family: Consolas, monospace;
			}

			input[type="number"],
			input[type="submit"] {
				background-color: #2b2b2b;
				color: #d3d3d3;
				border: 1px solid #444;
				padding: 5px;
				margin: 5px 0;
				border-radius: 4px;
			}

			input[type="submit"]:hover {
				background-color: #444;
				cursor: pointer;
			}
        </style>
    </head>
    <body>
        <div id="container">
            <div id="left-container">
                <h1>Voronoi diagram</h1>
                <form id="diagram-form" method="POST">
                    <label for="sites">Sites:</label>
                    <input type="number" id="sites" name="sites" value="{{.Sites}}" min="0" max="{{.MaxSites}}">
                    <label for="seed">Seed:</label>
                    <input type="number" id="seed" name="seed" value="{{.Seed}}">
                    <input type="submit" value="Build">
                </form>
                <p>Super triangle half extent {{.HalfExtent}}{{if .Rejected}}, {{.Rejected}} sites rejected{{end}}</p>
`))

const pageMiddle = `
            </div>
            <div id="right-container">
                <h1>Log</h1>
                <div id="logs">`

const pageTail = `
                </div>
            </div>
        </div>
    </body>
    </html>
`
