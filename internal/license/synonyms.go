package license

// licenseSynonyms maps a canonical SPDX identifier to the free-text and URL
// variants seen in SBOMs in the wild. The reverse map built below is what the
// resolver consults; matching is case-sensitive on the raw value.
var licenseSynonyms = map[string][]string{
	"Apache-2.0": {
		"https://www.apache.org/licenses/LICENSE-2.0;description=Apache-2.0",
		"https://www.apache.org/licenses/LICENSE-2.0.txt",
		"http://www.apache.org/licenses/LICENSE-2.0.txt",
		"https://www.apache.org/licenses/LICENSE-2.0.html",
		"https://www.apache.org/licenses/LICENSE-2.0",
		"http://www.apache.org/licenses/LICENSE-2.0.html;description=Apache 2.0 License",
		"Apache-2.0 license",
		`"Apache License 2.0";link="http://www.apache.org/licenses/LICENSE-2.0.html"`,
	},
	"BSD-3-Clause": {
		"https://opensource.org/licenses/BSD-3-Clause",
		"3-Clause BSD License",
		"http://www.eclipse.org/org/documents/edl-v10.php",
		"BSD 3-Clause",
		"BSD 3-Clause License",
	},
	"BSD-2-Clause": {
		"https://opensource.org/licenses/BSD-2-Clause",
		"https://opensource.org/licenses/BSD-2-Clause;description=BSD 2-Clause License",
	},
	"CDDL-1.1": {
		"https://github.com/javaee/activation/blob/master/LICENSE.txt",
	},
	"ZPL-2.1": {
		"ZPL 2.1",
	},
	"MIT": {
		"http://www.opensource.org/licenses/mit-license.php",
	},
}

// synonymToID is the many-to-one lookup used by the resolver.
var synonymToID = func() map[string]string {
	m := make(map[string]string)
	for id, syns := range licenseSynonyms {
		for _, s := range syns {
			m[s] = id
		}
	}
	return m
}()
