package main

// Sample represents a benchmark text sample.
type Sample struct {
	Name string
	Text string
}

// Samples are article-style texts at varying lengths. All of them clear the
// 50-character validation floor.
var Samples = []Sample{
	{
		Name: "tiny",
		Text: "The city council voted on Tuesday to extend the night bus network to the eastern districts, a change residents have requested for years.",
	},
	{
		Name: "short",
		Text: `Researchers at the institute announced a new water-filtration membrane that removes microplastics at roughly twice the rate of current commercial filters. The material, a modified cellulose mesh, can be produced on existing paper-mill equipment, which the team says keeps manufacturing costs close to those of conventional filters. Pilot installations are planned for two municipal treatment plants next spring, where the membrane will run alongside existing systems for a twelve-month comparison study. If the field results match the laboratory numbers, the group expects licensing discussions to begin before the end of the trial.`,
	},
	{
		Name: "medium",
		Text: `For most of the last decade, the port's cargo volumes grew faster than its infrastructure. Container ships waited an average of four days at anchor in 2021, and trucking companies routinely scheduled around multi-hour gate queues. The expansion program approved that year promised relief: two new deep-water berths, an automated stacking yard, and a rail spur connecting the terminal directly to the national freight network.

Three years on, the results are mixed. The berths opened on schedule and cut anchor time to under a day. The rail spur, however, remains unfinished after a dispute over a protected wetland crossing, and the automated yard has operated below capacity while the port authority and the dockworkers' union negotiate staffing terms for the new equipment.

Port officials point to the headline number: total throughput is up 28 percent since the program began, and waiting times are at their lowest in a decade. Critics counter that the gains came almost entirely from the berths, the cheapest third of the program, while the most expensive components sit idle. An independent review commissioned by the regional government is expected to report in the autumn, and its findings will likely shape whether the second phase of the expansion, a proposed inland container depot, moves forward at all.`,
	},
	{
		Name: "long",
		Text: `The history of the observatory begins with a bequest nobody wanted. When the estate of the industrialist Henrik Voss was settled in 1911, his will directed that the bulk of his fortune fund "a telescope of the first rank, on a mountain, far from the smoke of any city." The university that received the money had no astronomy department, no mountain, and, by the account of its own president, no idea what a telescope of the first rank cost.

What followed was a two-decade improvisation that modern project managers would recognize with a shudder. The site survey alone took six years, partly because the surveyor insisted on personally wintering at each candidate peak to measure atmospheric stability, and partly because the university twice ran out of money and paused the work. The mirror blank cracked during its first casting, was recast, and then spent four years being ground and polished by a team that included a former watchmaker and two graduate students who lived in the optics shop.

Yet the improvised project produced an instrument that outlasted nearly all of its better-planned contemporaries. First light came in 1934, and within five years the telescope had contributed measurements to the earliest distance estimates for galaxies outside the local group. During the war it operated with a skeleton crew who kept the mirror aluminized using equipment salvaged from a shuttered radio factory. In the 1960s it was the proving ground for one of the first electronic photometers, and in the 1980s, long after larger telescopes had claimed the frontier, it found a second life as a dedicated survey instrument, sweeping the same strips of sky night after night while bigger mirrors chased individual targets.

The observatory's directors have been asked many times what explains the longevity. The answer most of them give is unglamorous: the site survey. The six stubborn years the first surveyor spent freezing on mountaintops bought the institution a century of exceptionally stable air. Instruments can be upgraded, mirrors recoated, detectors replaced, but the atmosphere above a telescope is the one component that can never be engineered after the fact.`,
	},
}
