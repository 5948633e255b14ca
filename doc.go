/*
Package dyntype scales layout values in proportion to the user's preferred text size,
keeping the result between optional minimum and maximum bounds.

A value is scaled relative to a text style (body, headline, caption...). Each style has
a scaling curve listing its point size at every text size level, from xSmall up to the
largest accessibility level. Scaled values are evaluated on every read, so a change of
the preference is picked up without rebuilding anything.

The package also provides a command line interface printing the scaled values for every level.
To check the supported commands type:

	$ dyntype --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"log"

		"github.com/esimov/dyntype"
	)

	func main() {
		s := dyntype.NewScaler(
			dyntype.WithEnvironment(dyntype.StaticEnvironment(dyntype.Accessibility2)),
		)
		bounds, err := dyntype.MinMax(30, 78)
		if err != nil {
			log.Fatal(err)
		}
		side := s.Value(32, bounds, dyntype.Body)

		v, err := side.Value()
		if err != nil {
			log.Fatalf("Error scaling the value: %v", err)
		}
		fmt.Println(v)
	}

The gioscale sub-package converts the scaled values into Gio units, insets, fonts and labels.
*/
package dyntype
