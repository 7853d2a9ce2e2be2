package static

import (
	"html/template"
	"strings"
)

const page = `

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

			#chart-container {
				width: 100%;
				height: 400px;
			}

			input[type="number"],
			select,
			input[type="submit"] {
				background-color: #2b2b2b;
				color: #d3d3d3;
				border: 1px solid #444;
				padding: 5px;
				margin: 5px 0;
				border-radius: 4px;
			}

			label {
				color: #d3d3d3;
			}

			h1 {
				color: #d3d3d3;
			}

			input[type="submit"]:hover {
				background-color: #444;
				cursor: pointer;
			}

			/* dark scrollbars */
			::-webkit-scrollbar {
				width: 8px;
			}

			::-webkit-scrollbar-thumb {
				background-color: #444;
				border-radius: 10px;
			}

			::-webkit-scrollbar-track {
				background-color: #2b2b2b;
			}
        </style>
    </head>
    
    <body>
        <div id="container">
            <div id="left-container">
                <h1>Voronoi diagram parameters</h1>
                <form id="diagram-form" method="POST">
                    <label for="width">Width (W):</label>
                    <input type="number" id="width" name="width" value="{{.Width}}" min="100" max="5000"><br><br>
                    <label for="height">Height (H):</label>
                    <input type="number" id="height" name="height" value="{{.Height}}" min="100" max="5000"><br><br>
                    <label for="stations">Stations (n):</label>
                    <input type="number" id="stations" name="stations" value="{{.Stations}}" min="1" max="2000"><br><br>
                    <label for="random">Random stations:</label>
                    <input type="checkbox" id="random" name="random" value="true"{{if .Random}} checked{{end}}><br><br>
                    <label for="policy">Border policy:</label>
                    <select id="policy" name="policy">
                    {{- range .Policies}}
                        <option value="{{.}}"{{if eq . $.Policy}} selected{{end}}>{{.}}</option>
                    {{- end}}
                    </select><br><br>
                    <label for="relax">Lloyd steps:</label>
                    <input type="number" id="relax" name="relax" value="{{.Relax}}" min="0" max="50"><br><br>
                    <input type="submit" value="Build">
                </form>
`

var formTmpl = template.Must(template.New("form").Parse(page))

// Form renders the page head and the parameter form filled with the current
// values. The chart goes right after it, then Part2, the logs and Part3.
func Form(width, height, stations int, random bool, policy string, relax int) string {
	var b strings.Builder
	err := formTmpl.Execute(&b, struct {
		Width, Height, Stations int
		Random                  bool
		Policy                  string
		Policies                []string
		Relax                   int
	}{
		Width:    width,
		Height:   height,
		Stations: stations,
		Random:   random,
		Policy:   policy,
		Policies: []string{"omit", "border", "corners"},
		Relax:    relax,
	})
	if err != nil {
		return page
	}
	return b.String()
}

var (
	Part2 = `
            </div>
            <div id="right-container">
                <h1>Logs</h1>
                <div id="logs">`

	Part3 = `
                </div>
            </div>
        </div>

        <script>
            document.getElementById('diagram-form').addEventListener('submit', function (e) {
                e.preventDefault();
                const formData = new FormData(this);
                const params = new URLSearchParams(formData).toString();

                fetch('/', {
                    method: 'POST',
                    body: params,
                    headers: {
                        'Content-Type': 'application/x-www-form-urlencoded'
                    }
                })
                .then(response => {
                    if (!response.ok) {
                        return response.text().then(text => { throw new Error(text); });
                    }
                    return response.text();
                })
                .then(html => {
                    document.open();
                    document.write(html);
                    document.close();
                })
                .catch(error => {
                    console.error('Error:', error);
                    alert(error.message);
                });
            });
        </script>
    </body>
    </html>
    `
)
