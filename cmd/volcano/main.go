/*
Copyright © 2026 the Volcano authors.
This file is part of Volcano.

Volcano is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Volcano is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Volcano.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command volcano is a command-line interface for the volcanic
// hazard overlay renderer.
package main

import (
	"fmt"
	"os"

	"github.com/NicoleBenlot/volcano/volcanoutil"
)

func main() {
	if err := volcanoutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
